package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type PaymentService interface {
	MarkInvoicePaidByNumber(ctx context.Context, number string, amount decimal.Decimal, paidAt *time.Time) (entity.Invoice, error)
}

type EventHandler struct {
	s PaymentService
}

func NewEventHandler(s PaymentService) *EventHandler {
	return &EventHandler{s: s}
}

type OnPaymentReceivedEvent struct {
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        *time.Time      `json:"paid_at"`
}

// OnPaymentReceived marks the referenced invoice as paid. Redelivered payments
// for an invoice that is already paid are acknowledged, and so are partial payments,
// which leave the invoice unpaid.
func (h *EventHandler) OnPaymentReceived(ctx context.Context, msg kafka.Message) error {
	var event OnPaymentReceivedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.InvoiceNumber == "" || event.Amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	_, err = h.s.MarkInvoicePaidByNumber(ctx, event.InvoiceNumber, event.Amount, event.PaidAt)
	if errors.Is(err, entity.ErrAlreadyPaid) {
		slog.InfoContext(ctx, "payment for paid invoice ignored", "number", event.InvoiceNumber)
		return nil
	}

	if errors.Is(err, entity.ErrUnderpaid) {
		slog.WarnContext(ctx, "partial payment ignored",
			"number", event.InvoiceNumber, "amount", event.Amount.String(), "error", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("mark invoice %s paid: %w", event.InvoiceNumber, err)
	}

	return nil
}
