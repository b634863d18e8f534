package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	MaxNumberLen      = 50
	MaxNotesLen       = 1000
	MaxDescriptionLen = 255

	QuantityScale = 3
	MoneyScale    = 2
	RateScale     = 4
)

// Invoice is the aggregate root. Subtotal, VatAmount and Total are derived from Items
// and are recomputed by the calculator after every item change.
type Invoice struct {
	ID            uuid.UUID
	Number        string
	IssueDate     time.Time
	SaleDate      time.Time
	DueDate       *time.Time
	Currency      Currency
	PaymentMethod *PaymentMethod
	Status        InvoiceStatus
	IsPaid        bool
	PaidAt        *time.Time
	Notes         string
	CustomerID    uuid.UUID
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	VatAmount     decimal.Decimal
	Total         decimal.Decimal
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (i Invoice) IsDeleted() bool {
	return i.DeletedAt != nil
}

// InvoiceItem is a line of an invoice. NetAmount, VatAmount and GrossAmount are derived.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	Unit        Unit
	UnitPrice   decimal.Decimal
	VatRate     VatRate
	SortOrder   int
	NetAmount   decimal.Decimal
	VatAmount   decimal.Decimal
	GrossAmount decimal.Decimal
}

// ItemInput holds the user settable part of an invoice item.
type ItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Unit        Unit
	UnitPrice   decimal.Decimal
	VatRate     VatRate
	SortOrder   int
}

func (in ItemInput) Validate() error {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return fmt.Errorf("%w: item description is empty", ErrInvalidArgument)
	}

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLen {
		return fmt.Errorf("%w: item description is longer than %d characters", ErrInvalidArgument, MaxDescriptionLen)
	}

	if !in.Quantity.IsPositive() {
		return fmt.Errorf("%w: item quantity %s is not positive", ErrInvalidArgument, in.Quantity)
	}

	if !in.Quantity.Equal(in.Quantity.Truncate(QuantityScale)) {
		return fmt.Errorf("%w: item quantity %s has more than %d decimals", ErrInvalidArgument, in.Quantity, QuantityScale)
	}

	if in.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: item unit price %s is negative", ErrInvalidArgument, in.UnitPrice)
	}

	if !in.UnitPrice.Equal(in.UnitPrice.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: item unit price %s has more than %d decimals", ErrInvalidArgument, in.UnitPrice, MoneyScale)
	}

	if in.SortOrder < 0 {
		return fmt.Errorf("%w: item sort order %d is negative", ErrInvalidArgument, in.SortOrder)
	}

	err := in.Unit.Validate()
	if err != nil {
		return err
	}

	return in.VatRate.Validate()
}

// InvoiceHeader holds the user settable invoice fields shared by create and update.
type InvoiceHeader struct {
	IssueDate     time.Time
	SaleDate      time.Time
	DueDate       *time.Time
	Currency      Currency
	PaymentMethod *PaymentMethod
	Notes         string
	CustomerID    uuid.UUID
}

func (h InvoiceHeader) Validate() error {
	if h.IssueDate.IsZero() {
		return fmt.Errorf("%w: issue date is required", ErrInvalidArgument)
	}

	if h.SaleDate.IsZero() {
		return fmt.Errorf("%w: sale date is required", ErrInvalidArgument)
	}

	if h.CustomerID.IsNil() {
		return fmt.Errorf("%w: customer is required", ErrInvalidArgument)
	}

	if utf8.RuneCountInString(h.Notes) > MaxNotesLen {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidArgument, MaxNotesLen)
	}

	if h.PaymentMethod != nil {
		err := h.PaymentMethod.Validate()
		if err != nil {
			return err
		}
	}

	return h.Currency.Validate()
}

type CreateInvoiceParams struct {
	InvoiceHeader
	// Draft creates the invoice in DRAFT instead of the default ISSUED status.
	Draft bool
	Items []ItemInput
}

type UpdateInvoiceParams struct {
	InvoiceHeader
	Items []ItemInput
}

func ValidateItems(items []ItemInput) error {
	for i, item := range items {
		err := item.Validate()
		if err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	return nil
}
