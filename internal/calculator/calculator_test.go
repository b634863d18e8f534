package calculator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/internal/calculator"
	"github.com/lljaworski/invoicing/internal/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, d(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func TestComputeItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		qty       string
		price     string
		rate      entity.VatRate
		wantNet   string
		wantVat   string
		wantGross string
	}{
		{name: "23 percent", qty: "2.000", price: "100.00", rate: entity.VatRate23, wantNet: "200.00", wantVat: "46.00", wantGross: "246.00"},
		{name: "8 percent", qty: "1.000", price: "50.00", rate: entity.VatRate8, wantNet: "50.00", wantVat: "4.00", wantGross: "54.00"},
		{name: "truncates net", qty: "3.33", price: "33.33", rate: entity.VatRate0, wantNet: "110.98", wantVat: "0.00", wantGross: "110.98"},
		{name: "truncates vat", qty: "1", price: "10.99", rate: entity.VatRate23, wantNet: "10.99", wantVat: "2.52", wantGross: "13.51"},
		{name: "5 percent", qty: "0.5", price: "19.99", rate: entity.VatRate5, wantNet: "9.99", wantVat: "0.49", wantGross: "10.48"},
		{name: "zero price", qty: "4", price: "0.00", rate: entity.VatRate23, wantNet: "0", wantVat: "0", wantGross: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := calculator.ComputeItem(d(tt.qty), d(tt.price), tt.rate)
			require.NoError(t, err)
			requireDec(t, tt.wantNet, got.Net, "net")
			requireDec(t, tt.wantVat, got.Vat, "vat")
			requireDec(t, tt.wantGross, got.Gross, "gross")
			require.True(t, got.Gross.Equal(got.Net.Add(got.Vat)))
		})
	}
}

func TestComputeItem_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := calculator.ComputeItem(d("1"), d("1"), entity.VatRate("7.00"))
	require.ErrorIs(t, err, entity.ErrInvalidVatRate)
}

func TestApplyItems_Invoice(t *testing.T) {
	t.Parallel()

	inv := &entity.Invoice{}
	err := calculator.ApplyItems(inv, []entity.ItemInput{
		{Description: "Consulting", Quantity: d("2.000"), Unit: entity.UnitHour, UnitPrice: d("100.00"), VatRate: entity.VatRate23},
		{Description: "Travel", Quantity: d("1.000"), Unit: entity.UnitService, UnitPrice: d("50.00"), VatRate: entity.VatRate8, SortOrder: 1},
	})
	require.NoError(t, err)

	require.Len(t, inv.Items, 2)
	requireDec(t, "200.00", inv.Items[0].NetAmount)
	requireDec(t, "46.00", inv.Items[0].VatAmount)
	requireDec(t, "50.00", inv.Items[1].NetAmount)
	requireDec(t, "4.00", inv.Items[1].VatAmount)
	require.Equal(t, 1, inv.Items[1].SortOrder)

	requireDec(t, "250.00", inv.Subtotal)
	requireDec(t, "50.00", inv.VatAmount)
	requireDec(t, "300.00", inv.Total)

	require.True(t, calculator.ValidateTotals(*inv).Valid)

	// recomputing gives the same figures
	again := calculator.ComputeInvoiceTotals(inv.Items)
	require.True(t, again.Subtotal.Equal(inv.Subtotal))
	require.True(t, again.VatAmount.Equal(inv.VatAmount))
	require.True(t, again.Total.Equal(inv.Total))
}

func TestComputeInvoiceTotals_Empty(t *testing.T) {
	t.Parallel()

	got := calculator.ComputeInvoiceTotals(nil)
	require.True(t, got.Subtotal.IsZero())
	require.True(t, got.VatAmount.IsZero())
	require.True(t, got.Total.IsZero())
	require.NotNil(t, got.Breakdown)
	require.Empty(t, got.Breakdown)
}

func TestComputeInvoiceTotals_Breakdown(t *testing.T) {
	t.Parallel()

	items := []entity.InvoiceItem{
		{VatRate: entity.VatRate8, NetAmount: d("50.00"), VatAmount: d("4.00")},
		{VatRate: entity.VatRate23, NetAmount: d("100.00"), VatAmount: d("23.00")},
		{VatRate: entity.VatRate0, NetAmount: d("10.00"), VatAmount: d("0.00")},
		{VatRate: entity.VatRate23, NetAmount: d("10.00"), VatAmount: d("2.30")},
	}

	got := calculator.ComputeInvoiceTotals(items)
	require.Len(t, got.Breakdown, 3)

	require.Equal(t, entity.VatRate23, got.Breakdown[0].Rate)
	requireDec(t, "110.00", got.Breakdown[0].Net)
	requireDec(t, "25.30", got.Breakdown[0].Vat)
	requireDec(t, "135.30", got.Breakdown[0].Gross)

	require.Equal(t, entity.VatRate8, got.Breakdown[1].Rate)
	require.Equal(t, entity.VatRate0, got.Breakdown[2].Rate)

	requireDec(t, "170.00", got.Subtotal)
	requireDec(t, "29.30", got.VatAmount)
	requireDec(t, "199.30", got.Total)
}

func TestValidateTotals(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) entity.Invoice {
		t.Helper()

		inv := entity.Invoice{}
		require.NoError(t, calculator.ApplyItems(&inv, []entity.ItemInput{
			{Description: "A", Quantity: d("2"), Unit: entity.UnitPiece, UnitPrice: d("100.00"), VatRate: entity.VatRate23},
			{Description: "B", Quantity: d("1"), Unit: entity.UnitPiece, UnitPrice: d("50.00"), VatRate: entity.VatRate8},
		}))

		return inv
	}

	t.Run("corrupted subtotal", func(t *testing.T) {
		t.Parallel()

		inv := build(t)
		inv.Subtotal = inv.Subtotal.Add(d("0.01"))

		got := calculator.ValidateTotals(inv)
		require.False(t, got.Valid)
		require.Len(t, got.Mismatches, 1)
		require.Equal(t, calculator.FieldSubtotal, got.Mismatches[0].Field)
		requireDec(t, "250.01", got.Mismatches[0].Stored)
		requireDec(t, "250.00", got.Mismatches[0].Calculated)
		require.Equal(t, []string{"subtotal: stored 250.01, calculated 250.00"}, got.Messages())
	})

	t.Run("corrupted item", func(t *testing.T) {
		t.Parallel()

		inv := build(t)
		inv.Items[1].VatAmount = d("5.00")

		got := calculator.ValidateTotals(inv)
		require.False(t, got.Valid)

		fields := make([]string, 0, len(got.Mismatches))
		for _, m := range got.Mismatches {
			fields = append(fields, m.Field)
		}

		require.Contains(t, fields, "items[1].vatAmount")
	})

	t.Run("corrupted vat rate", func(t *testing.T) {
		t.Parallel()

		inv := build(t)
		inv.Items[0].VatRate = "7.00"

		got := calculator.ValidateTotals(inv)
		require.False(t, got.Valid)
		require.Len(t, got.Mismatches, 1)
		require.Equal(t, "items[0].vatRate", got.Mismatches[0].Field)
		require.Contains(t, got.Messages()[0], "items[0].vatRate: ")
		require.Contains(t, got.Messages()[0], entity.ErrInvalidVatRate.Error())
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		got := calculator.ValidateTotals(build(t))
		require.True(t, got.Valid)
		require.Empty(t, got.Mismatches)
	})
}

func TestConversions(t *testing.T) {
	t.Parallel()

	requireDec(t, "0.23", calculator.PercentageToFraction(d("23.00")))
	requireDec(t, "0.0825", calculator.PercentageToFraction(d("8.25")))
	requireDec(t, "23.00", calculator.FractionToPercentage(d("0.2300")))
	requireDec(t, "12.34", calculator.FractionToPercentage(d("0.12345")))
	requireDec(t, "0.33", calculator.Truncate2(d("0.339")))
	requireDec(t, "-0.33", calculator.Truncate2(d("-0.339")))
	requireDec(t, "1.2345", calculator.Truncate4(d("1.23456")))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   string
		currency entity.Currency
		want     string
	}{
		{amount: "0", currency: entity.CurrencyPLN, want: "0,00 PLN"},
		{amount: "12.5", currency: entity.CurrencyEUR, want: "12,50 EUR"},
		{amount: "1234.56", currency: entity.CurrencyPLN, want: "1 234,56 PLN"},
		{amount: "1234567.5", currency: entity.CurrencyPLN, want: "1 234 567,50 PLN"},
		{amount: "-999.99", currency: entity.CurrencyUSD, want: "-999,99 USD"},
		{amount: "100000", currency: "", want: "100 000,00"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, calculator.FormatAmount(d(tt.amount), tt.currency))
	}
}

func TestApplyDiscount(t *testing.T) {
	t.Parallel()

	got := calculator.ApplyDiscount(d("199.99"), d("10"))
	requireDec(t, "199.99", got.Original)
	requireDec(t, "19.99", got.DiscountAmount)
	requireDec(t, "180.00", got.Final)

	none := calculator.ApplyDiscount(d("50.00"), d("0"))
	requireDec(t, "0", none.DiscountAmount)
	requireDec(t, "50.00", none.Final)
}
