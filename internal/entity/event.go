package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceEventType string

const (
	InvoiceEventCreated   InvoiceEventType = "invoice.created"
	InvoiceEventUpdated   InvoiceEventType = "invoice.updated"
	InvoiceEventIssued    InvoiceEventType = "invoice.issued"
	InvoiceEventPaid      InvoiceEventType = "invoice.paid"
	InvoiceEventCancelled InvoiceEventType = "invoice.cancelled"
	InvoiceEventDeleted   InvoiceEventType = "invoice.deleted"
)

// InvoiceEvent is published after every persisted invoice change. Downstream consumers
// (e.g. e-invoicing submission) read the computed figures from it.
type InvoiceEvent struct {
	Type       InvoiceEventType `json:"type"`
	InvoiceID  uuid.UUID        `json:"invoice_id"`
	Number     string           `json:"number"`
	Status     InvoiceStatus    `json:"status"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	VatAmount  decimal.Decimal  `json:"vat_amount"`
	Total      decimal.Decimal  `json:"total"`
	Currency   Currency         `json:"currency"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewInvoiceEvent(t InvoiceEventType, inv Invoice, at time.Time) InvoiceEvent {
	return InvoiceEvent{
		Type:       t,
		InvoiceID:  inv.ID,
		Number:     inv.Number,
		Status:     inv.Status,
		Subtotal:   inv.Subtotal,
		VatAmount:  inv.VatAmount,
		Total:      inv.Total,
		Currency:   inv.Currency,
		OccurredAt: at,
	}
}
