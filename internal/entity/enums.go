package entity

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}

	return false
}

// IsEditable reports whether invoice data may still change in this status.
func (s InvoiceStatus) IsEditable() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusIssued
}

// IsDeletable reports whether an invoice in this status may be soft deleted.
func (s InvoiceStatus) IsDeletable() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusCancelled
}

// VatRate is a percentage with two decimals. Only the rates below exist.
type VatRate string

const (
	VatRate0  VatRate = "0.00"
	VatRate5  VatRate = "5.00"
	VatRate8  VatRate = "8.00"
	VatRate23 VatRate = "23.00"
)

var vatRates = []VatRate{VatRate0, VatRate5, VatRate8, VatRate23}

// ParseVatRate accepts any decimal spelling of an allowed rate ("23", "23.0") and
// returns its canonical form.
func ParseVatRate(s string) (VatRate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidVatRate, s)
	}

	r := VatRate(d.StringFixed(2))
	if !r.IsValid() || !d.Equal(r.Percent()) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVatRate, s)
	}

	return r, nil
}

func (r VatRate) IsValid() bool {
	return slices.Contains(vatRates, r)
}

func (r VatRate) Validate() error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVatRate, string(r))
	}

	return nil
}

// Percent returns the rate as a decimal percentage, e.g. 23.00.
func (r VatRate) Percent() decimal.Decimal {
	return decimal.RequireFromString(string(r))
}

func (r VatRate) String() string {
	return string(r)
}

// VatRates returns all allowed rates.
func VatRates() []VatRate {
	return slices.Clone(vatRates)
}

type Unit string

const (
	UnitPiece        Unit = "szt."
	UnitKilogram     Unit = "kg"
	UnitMeter        Unit = "m"
	UnitSquareMeter  Unit = "m2"
	UnitCubicMeter   Unit = "m3"
	UnitHour         Unit = "godz."
	UnitDay          Unit = "dzień"
	UnitLiter        Unit = "l"
	UnitTonne        Unit = "t"
	UnitKilometer    Unit = "km"
	UnitKilowattHour Unit = "kWh"
	UnitService      Unit = "usł."
	UnitSet          Unit = "kpl."
	UnitPackage      Unit = "op."
	UnitRunningMeter Unit = "m.b."
)

var units = []Unit{
	UnitPiece, UnitKilogram, UnitMeter, UnitSquareMeter, UnitCubicMeter, UnitHour, UnitDay, UnitLiter,
	UnitTonne, UnitKilometer, UnitKilowattHour, UnitService, UnitSet, UnitPackage, UnitRunningMeter,
}

func (u Unit) IsValid() bool {
	return slices.Contains(units, u)
}

func (u Unit) Validate() error {
	if !u.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, string(u))
	}

	return nil
}

type Currency string

const (
	CurrencyPLN Currency = "PLN"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
	CurrencyCZK Currency = "CZK"
	CurrencySEK Currency = "SEK"
	CurrencyNOK Currency = "NOK"
	CurrencyDKK Currency = "DKK"
)

const DefaultCurrency = CurrencyPLN

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyPLN, CurrencyEUR, CurrencyUSD, CurrencyGBP, CurrencyCHF,
		CurrencyCZK, CurrencySEK, CurrencyNOK, CurrencyDKK:
		return true
	}

	return false
}

func (c Currency) Validate() error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, string(c))
	}

	return nil
}

func (c Currency) String() string {
	return string(c)
}

type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
)

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodTransfer, PaymentMethodCash, PaymentMethodCard:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %s", ErrInvalidArgument, p)
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}
