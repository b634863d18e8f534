package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/internal/entity"
)

func TestParseVatRate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in      string
		want    entity.VatRate
		wantErr bool
	}{
		{in: "0", want: entity.VatRate0},
		{in: "0.00", want: entity.VatRate0},
		{in: "5", want: entity.VatRate5},
		{in: "8.0", want: entity.VatRate8},
		{in: "23", want: entity.VatRate23},
		{in: "23.00", want: entity.VatRate23},
		{in: "23.001", wantErr: true},
		{in: "22", wantErr: true},
		{in: "-23", wantErr: true},
		{in: "zw", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseVatRate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidVatRate)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestVatRate_Percent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "23", entity.VatRate23.Percent().String())
	require.Equal(t, "0", entity.VatRate0.Percent().String())
	require.Len(t, entity.VatRates(), 4)
}

func TestInvoiceStatus_Predicates(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		status    entity.InvoiceStatus
		editable  bool
		deletable bool
	}{
		{status: entity.InvoiceStatusDraft, editable: true, deletable: true},
		{status: entity.InvoiceStatusIssued, editable: true, deletable: false},
		{status: entity.InvoiceStatusPaid, editable: false, deletable: false},
		{status: entity.InvoiceStatusCancelled, editable: false, deletable: true},
	} {
		require.True(t, tt.status.IsValid())
		require.Equal(t, tt.editable, tt.status.IsEditable(), tt.status)
		require.Equal(t, tt.deletable, tt.status.IsDeletable(), tt.status)
	}

	require.False(t, entity.InvoiceStatus("VOID").IsValid())
}

func TestUnit_Validate(t *testing.T) {
	t.Parallel()

	for _, u := range []entity.Unit{"szt.", "kg", "m", "m2", "m3", "godz.", "dzień", "l", "t", "km", "kWh", "usł.", "kpl.", "op.", "m.b."} {
		require.NoError(t, u.Validate(), u)
	}

	require.ErrorIs(t, entity.Unit("pcs").Validate(), entity.ErrInvalidUnit)
	require.ErrorIs(t, entity.Unit("").Validate(), entity.ErrInvalidUnit)
}

func TestCurrency_Validate(t *testing.T) {
	t.Parallel()

	for _, c := range []entity.Currency{"PLN", "EUR", "USD", "GBP", "CHF", "CZK", "SEK", "NOK", "DKK"} {
		require.NoError(t, c.Validate(), c)
	}

	require.ErrorIs(t, entity.Currency("JPY").Validate(), entity.ErrInvalidCurrency)
	require.Equal(t, entity.CurrencyPLN, entity.DefaultCurrency)
}
