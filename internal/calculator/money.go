package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/entity"
)

// Truncate2 cuts a value to money scale, toward zero: 0.339 is 0.33 and -0.339 is -0.33.
func Truncate2(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(entity.MoneyScale)
}

// Truncate4 cuts a value to rate scale, toward zero.
func Truncate4(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(entity.RateScale)
}

func Zero() decimal.Decimal {
	return decimal.New(0, -entity.MoneyScale)
}

func Add(a, b decimal.Decimal) decimal.Decimal {
	return Truncate2(a.Add(b))
}

func Sub(a, b decimal.Decimal) decimal.Decimal {
	return Truncate2(a.Sub(b))
}

func Mul(a, b decimal.Decimal) decimal.Decimal {
	return Truncate2(a.Mul(b))
}

// PercentageToFraction turns 23.00 into 0.2300.
func PercentageToFraction(percent decimal.Decimal) decimal.Decimal {
	return Truncate4(percent.DivRound(oneHundred, entity.RateScale+2))
}

// FractionToPercentage turns 0.2300 into 23.00.
func FractionToPercentage(fraction decimal.Decimal) decimal.Decimal {
	return Truncate2(fraction.Mul(oneHundred))
}

// FormatAmount renders an amount the way it is printed on invoices: space as
// thousands separator, comma as decimal separator, currency code suffix.
// 1234567.5 PLN -> "1 234 567,50 PLN".
func FormatAmount(amount decimal.Decimal, currency entity.Currency) string {
	fixed := amount.Abs().StringFixed(entity.MoneyScale)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder

	if amount.IsNegative() && !amount.Round(entity.MoneyScale).IsZero() {
		b.WriteByte('-')
	}

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}

		b.WriteRune(r)
	}

	b.WriteByte(',')
	b.WriteString(fracPart)

	if currency != "" {
		b.WriteByte(' ')
		b.WriteString(currency.String())
	}

	return b.String()
}

type Discount struct {
	Original       decimal.Decimal
	DiscountAmount decimal.Decimal
	Final          decimal.Decimal
}

// ApplyDiscount takes discountPercent (e.g. 10 for 10%) off the original amount.
func ApplyDiscount(original, discountPercent decimal.Decimal) Discount {
	discount := Mul(original, PercentageToFraction(discountPercent))

	return Discount{
		Original:       original,
		DiscountAmount: discount,
		Final:          Sub(original, discount),
	}
}
