package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/internal/entity"
)

func validItem() entity.ItemInput {
	return entity.ItemInput{
		Description: "Consulting",
		Quantity:    decimal.RequireFromString("2.000"),
		Unit:        entity.UnitHour,
		UnitPrice:   decimal.RequireFromString("100.00"),
		VatRate:     entity.VatRate23,
	}
}

func TestItemInput_Validate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		modify  func(in *entity.ItemInput)
		wantErr error
	}{
		{name: "valid", modify: func(*entity.ItemInput) {}},
		{name: "zero price", modify: func(in *entity.ItemInput) { in.UnitPrice = decimal.Zero }},
		{name: "empty description", modify: func(in *entity.ItemInput) { in.Description = "  " }, wantErr: entity.ErrInvalidArgument},
		{
			name:    "long description",
			modify:  func(in *entity.ItemInput) { in.Description = strings.Repeat("ą", 256) },
			wantErr: entity.ErrInvalidArgument,
		},
		{name: "zero quantity", modify: func(in *entity.ItemInput) { in.Quantity = decimal.Zero }, wantErr: entity.ErrInvalidArgument},
		{
			name:    "quantity scale",
			modify:  func(in *entity.ItemInput) { in.Quantity = decimal.RequireFromString("1.0005") },
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "negative price",
			modify:  func(in *entity.ItemInput) { in.UnitPrice = decimal.RequireFromString("-1") },
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "price scale",
			modify:  func(in *entity.ItemInput) { in.UnitPrice = decimal.RequireFromString("1.001") },
			wantErr: entity.ErrInvalidArgument,
		},
		{name: "negative sort order", modify: func(in *entity.ItemInput) { in.SortOrder = -1 }, wantErr: entity.ErrInvalidArgument},
		{name: "unit", modify: func(in *entity.ItemInput) { in.Unit = "pcs" }, wantErr: entity.ErrInvalidUnit},
		{name: "vat rate", modify: func(in *entity.ItemInput) { in.VatRate = "7.00" }, wantErr: entity.ErrInvalidVatRate},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validItem()
			tt.modify(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateItems_ReportsPosition(t *testing.T) {
	t.Parallel()

	bad := validItem()
	bad.Unit = "pcs"

	err := entity.ValidateItems([]entity.ItemInput{validItem(), bad})
	require.ErrorIs(t, err, entity.ErrInvalidUnit)
	require.Contains(t, err.Error(), "item 2")
}

func TestInvoiceHeader_Validate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	method := entity.PaymentMethod("barter")

	valid := entity.InvoiceHeader{
		IssueDate:  now,
		SaleDate:   now,
		Currency:   entity.CurrencyEUR,
		CustomerID: uuid.Must(uuid.NewV4()),
	}
	require.NoError(t, valid.Validate())

	h := valid
	h.IssueDate = time.Time{}
	require.ErrorIs(t, h.Validate(), entity.ErrInvalidArgument)

	h = valid
	h.CustomerID = uuid.Nil
	require.ErrorIs(t, h.Validate(), entity.ErrInvalidArgument)

	h = valid
	h.Notes = strings.Repeat("x", 1001)
	require.ErrorIs(t, h.Validate(), entity.ErrInvalidArgument)

	h = valid
	h.PaymentMethod = &method
	require.ErrorIs(t, h.Validate(), entity.ErrInvalidArgument)

	h = valid
	h.Currency = "JPY"
	require.ErrorIs(t, h.Validate(), entity.ErrInvalidCurrency)
}

func TestErrors_Unwrap(t *testing.T) {
	t.Parallel()

	var err error = &entity.TransitionError{Action: "cancel", From: entity.InvoiceStatusCancelled, To: entity.InvoiceStatusCancelled}
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
	require.Equal(t, "cancel: invalid status transition from CANCELLED to CANCELLED", err.Error())

	err = &entity.RuleError{Action: "delete", Status: entity.InvoiceStatusPaid, Err: entity.ErrNotDeletable}
	require.ErrorIs(t, err, entity.ErrNotDeletable)
	require.Equal(t, "delete: invoice is not deletable (status PAID)", err.Error())
}
