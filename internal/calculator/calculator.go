// Package calculator computes item and invoice amounts on fixed-point decimals.
//
// Every multiplication, division and addition is cut to its target scale right away
// (2 decimals for money, 4 for rate fractions). Deferring the rounding to the end of a
// chain gives different cents and is a bug. Cutting is toward zero, which is what the
// bookkeeping data this service reproduces was computed with.
package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/entity"
)

var oneHundred = decimal.NewFromInt(100)

type ItemAmounts struct {
	Net   decimal.Decimal
	Vat   decimal.Decimal
	Gross decimal.Decimal
}

// RateTotals is one row of the VAT breakdown.
type RateTotals struct {
	Rate  entity.VatRate
	Net   decimal.Decimal
	Vat   decimal.Decimal
	Gross decimal.Decimal
}

type Totals struct {
	Subtotal  decimal.Decimal
	VatAmount decimal.Decimal
	Total     decimal.Decimal
	Breakdown []RateTotals
}

// ComputeItem returns net = quantity*unitPrice, vat = net*rate/100, gross = net+vat.
func ComputeItem(quantity, unitPrice decimal.Decimal, rate entity.VatRate) (ItemAmounts, error) {
	err := rate.Validate()
	if err != nil {
		return ItemAmounts{}, err
	}

	net := Mul(quantity, unitPrice)
	vat := Mul(net, PercentageToFraction(rate.Percent()))

	return ItemAmounts{
		Net:   net,
		Vat:   vat,
		Gross: Add(net, vat),
	}, nil
}

// ComputeInvoiceTotals sums the already computed item amounts. The breakdown is
// grouped by VAT rate, highest rate first.
func ComputeInvoiceTotals(items []entity.InvoiceItem) Totals {
	t := Totals{
		Subtotal:  Zero(),
		VatAmount: Zero(),
		Breakdown: []RateTotals{},
	}

	byRate := make(map[entity.VatRate]*RateTotals)

	for _, item := range items {
		t.Subtotal = Add(t.Subtotal, item.NetAmount)
		t.VatAmount = Add(t.VatAmount, item.VatAmount)

		rt, ok := byRate[item.VatRate]
		if !ok {
			rt = &RateTotals{Rate: item.VatRate, Net: Zero(), Vat: Zero(), Gross: Zero()}
			byRate[item.VatRate] = rt
		}

		rt.Net = Add(rt.Net, item.NetAmount)
		rt.Vat = Add(rt.Vat, item.VatAmount)
	}

	t.Total = Add(t.Subtotal, t.VatAmount)

	for _, rt := range byRate {
		rt.Gross = Add(rt.Net, rt.Vat)
		t.Breakdown = append(t.Breakdown, *rt)
	}

	slices.SortFunc(t.Breakdown, func(a, b RateTotals) int {
		return cmp.Compare(rateKey(b.Rate), rateKey(a.Rate))
	})

	return t
}

// ApplyItems computes the amounts of every item and the invoice totals in place.
// Items are built from the inputs in order; the caller owns the replacement of the
// previous list.
func ApplyItems(inv *entity.Invoice, inputs []entity.ItemInput) error {
	items := make([]entity.InvoiceItem, 0, len(inputs))

	for _, in := range inputs {
		amounts, err := ComputeItem(in.Quantity, in.UnitPrice, in.VatRate)
		if err != nil {
			return err
		}

		items = append(items, entity.InvoiceItem{
			InvoiceID:   inv.ID,
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			VatRate:     in.VatRate,
			SortOrder:   in.SortOrder,
			NetAmount:   amounts.Net,
			VatAmount:   amounts.Vat,
			GrossAmount: amounts.Gross,
		})
	}

	t := ComputeInvoiceTotals(items)

	inv.Items = items
	inv.Subtotal = t.Subtotal
	inv.VatAmount = t.VatAmount
	inv.Total = t.Total

	return nil
}

func rateKey(r entity.VatRate) int64 {
	d, err := decimal.NewFromString(string(r))
	if err != nil {
		return -1
	}

	return d.Shift(entity.MoneyScale).IntPart()
}
