package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/entity"
)

const (
	FieldSubtotal  = "subtotal"
	FieldVatAmount = "vatAmount"
	FieldTotal     = "total"
)

// Mismatch is a stored figure that differs from the recomputed one. Detail is set
// instead of the amounts when the item cannot be recomputed at all.
type Mismatch struct {
	Field      string
	Stored     decimal.Decimal
	Calculated decimal.Decimal
	Detail     string
}

func (m Mismatch) String() string {
	if m.Detail != "" {
		return m.Field + ": " + m.Detail
	}

	return fmt.Sprintf("%s: stored %s, calculated %s",
		m.Field, m.Stored.StringFixed(entity.MoneyScale), m.Calculated.StringFixed(entity.MoneyScale))
}

type Validation struct {
	Valid      bool
	Mismatches []Mismatch
}

func (v Validation) Messages() []string {
	msgs := make([]string, 0, len(v.Mismatches))
	for _, m := range v.Mismatches {
		msgs = append(msgs, m.String())
	}

	return msgs
}

// ValidateTotals recomputes the invoice figures from its items and compares them with
// the stored ones. Mismatches are reported, never corrected.
func ValidateTotals(inv entity.Invoice) Validation {
	var mismatches []Mismatch

	check := func(field string, stored, calculated decimal.Decimal) {
		if !stored.Equal(calculated) {
			mismatches = append(mismatches, Mismatch{Field: field, Stored: stored, Calculated: calculated})
		}
	}

	for i, item := range inv.Items {
		prefix := fmt.Sprintf("items[%d].", i)

		amounts, err := ComputeItem(item.Quantity, item.UnitPrice, item.VatRate)
		if err != nil {
			mismatches = append(mismatches, Mismatch{Field: prefix + "vatRate", Detail: err.Error()})
			continue
		}

		check(prefix+"netAmount", item.NetAmount, amounts.Net)
		check(prefix+"vatAmount", item.VatAmount, amounts.Vat)
		check(prefix+"grossAmount", item.GrossAmount, amounts.Gross)
	}

	t := ComputeInvoiceTotals(inv.Items)
	check(FieldSubtotal, inv.Subtotal, t.Subtotal)
	check(FieldVatAmount, inv.VatAmount, t.VatAmount)
	check(FieldTotal, inv.Total, t.Total)

	return Validation{
		Valid:      len(mismatches) == 0,
		Mismatches: mismatches,
	}
}
