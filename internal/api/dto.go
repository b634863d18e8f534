package api

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/calculator"
	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/internal/lifecycle"
	"github.com/lljaworski/invoicing/internal/numbering"
)

const dateLayout = time.DateOnly

type InvoiceRequest struct {
	IssueDate     string        `json:"issueDate" example:"2024-10-15"`
	SaleDate      string        `json:"saleDate" example:"2024-10-15"`
	DueDate       *string       `json:"dueDate,omitempty" example:"2024-10-29"`
	Currency      string        `json:"currency,omitempty" example:"PLN"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" example:"transfer"`
	Notes         string        `json:"notes,omitempty"`
	CustomerID    uuid.UUID     `json:"customerId"`
	Draft         bool          `json:"draft,omitempty"`
	Items         []ItemRequest `json:"items"`
}

type ItemRequest struct {
	Description string           `json:"description" example:"Consulting"`
	Quantity    decimal.Decimal  `json:"quantity" swaggertype:"string" example:"2.000"`
	Unit        string           `json:"unit" example:"godz."`
	UnitPrice   decimal.Decimal  `json:"unitPrice" swaggertype:"string" example:"100.00"`
	VatRate     *decimal.Decimal `json:"vatRate" swaggertype:"string" example:"23"`
	SortOrder   int              `json:"sortOrder"`
}

func (r InvoiceRequest) header() (entity.InvoiceHeader, error) {
	issueDate, err := parseDate("issueDate", r.IssueDate)
	if err != nil {
		return entity.InvoiceHeader{}, err
	}

	saleDate, err := parseDate("saleDate", r.SaleDate)
	if err != nil {
		return entity.InvoiceHeader{}, err
	}

	h := entity.InvoiceHeader{
		IssueDate:  issueDate,
		SaleDate:   saleDate,
		Currency:   entity.Currency(r.Currency),
		Notes:      r.Notes,
		CustomerID: r.CustomerID,
	}

	if r.DueDate != nil && *r.DueDate != "" {
		dueDate, err := parseDate("dueDate", *r.DueDate)
		if err != nil {
			return entity.InvoiceHeader{}, err
		}

		h.DueDate = &dueDate
	}

	if r.PaymentMethod != nil && *r.PaymentMethod != "" {
		method := entity.PaymentMethod(*r.PaymentMethod)
		h.PaymentMethod = &method
	}

	return h, nil
}

func (r InvoiceRequest) items() ([]entity.ItemInput, error) {
	items := make([]entity.ItemInput, 0, len(r.Items))

	for i, item := range r.Items {
		if item.VatRate == nil {
			return nil, fmt.Errorf("item %d: %w: vat rate is required", i+1, entity.ErrInvalidVatRate)
		}

		rate, err := entity.ParseVatRate(item.VatRate.String())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}

		items = append(items, entity.ItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        entity.Unit(item.Unit),
			UnitPrice:   item.UnitPrice,
			VatRate:     rate,
			SortOrder:   item.SortOrder,
		})
	}

	return items, nil
}

func (r InvoiceRequest) createParams() (entity.CreateInvoiceParams, error) {
	h, err := r.header()
	if err != nil {
		return entity.CreateInvoiceParams{}, err
	}

	items, err := r.items()
	if err != nil {
		return entity.CreateInvoiceParams{}, err
	}

	return entity.CreateInvoiceParams{InvoiceHeader: h, Draft: r.Draft, Items: items}, nil
}

func (r InvoiceRequest) updateParams() (entity.UpdateInvoiceParams, error) {
	h, err := r.header()
	if err != nil {
		return entity.UpdateInvoiceParams{}, err
	}

	items, err := r.items()
	if err != nil {
		return entity.UpdateInvoiceParams{}, err
	}

	return entity.UpdateInvoiceParams{InvoiceHeader: h, Items: items}, nil
}

type MarkPaidRequest struct {
	PaidAt *time.Time `json:"paidAt,omitempty"`
}

type InvoiceResponse struct {
	ID             uuid.UUID      `json:"id"`
	Number         string         `json:"number"`
	IssueDate      string         `json:"issueDate"`
	SaleDate       string         `json:"saleDate"`
	DueDate        *string        `json:"dueDate,omitempty"`
	Currency       string         `json:"currency"`
	PaymentMethod  *string        `json:"paymentMethod,omitempty"`
	Status         string         `json:"status"`
	IsPaid         bool           `json:"isPaid"`
	PaidAt         *time.Time     `json:"paidAt,omitempty"`
	Notes          string         `json:"notes"`
	CustomerID     uuid.UUID      `json:"customerId"`
	Items          []ItemResponse `json:"items"`
	Subtotal       string         `json:"subtotal" example:"250.00"`
	VatAmount      string         `json:"vatAmount" example:"50.00"`
	Total          string         `json:"total" example:"300.00"`
	TotalFormatted string         `json:"totalFormatted" example:"300,00 PLN"`
	CanBeEdited    bool           `json:"canBeEdited"`
	CanBeDeleted   bool           `json:"canBeDeleted"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity" example:"2.000"`
	Unit        string    `json:"unit"`
	UnitPrice   string    `json:"unitPrice" example:"100.00"`
	VatRate     string    `json:"vatRate" example:"23.00"`
	SortOrder   int       `json:"sortOrder"`
	NetAmount   string    `json:"netAmount" example:"200.00"`
	VatAmount   string    `json:"vatAmount" example:"46.00"`
	GrossAmount string    `json:"grossAmount" example:"246.00"`
}

type InvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalCount int               `json:"totalCount"`
}

type ValidationResponse struct {
	Valid      bool               `json:"isValid"`
	Mismatches []MismatchResponse `json:"mismatches"`
}

type MismatchResponse struct {
	Field       string `json:"field"`
	Stored      string `json:"stored"`
	Calculated  string `json:"calculated"`
	Description string `json:"description"`
}

type VatBreakdownResponse struct {
	Rates     []RateTotalsResponse `json:"rates"`
	Subtotal  string               `json:"subtotal"`
	VatAmount string               `json:"vatAmount"`
	Total     string               `json:"total"`
}

type RateTotalsResponse struct {
	VatRate string `json:"vatRate" example:"23.00"`
	Net     string `json:"net"`
	Vat     string `json:"vat"`
	Gross   string `json:"gross"`
}

type NumberFormatRequest struct {
	Template string `json:"template" example:"FV/{year}/{month}/{number}"`
}

type NumberFormatResponse struct {
	Template string `json:"template" example:"FV/{year}/{month}/{number}"`
}

type NextNumberResponse struct {
	Number string `json:"number" example:"FV/2024/10/0001"`
}

// ParsedNumberResponse carries the number parts only when IsValid is true.
type ParsedNumberResponse struct {
	Number   string `json:"number" example:"FV/2024/10/0001"`
	IsValid  bool   `json:"isValid"`
	Year     int    `json:"year,omitempty" example:"2024"`
	Month    int    `json:"month,omitempty" example:"10"`
	Sequence int    `json:"sequence,omitempty" example:"1"`
}

func invoiceToAPI(inv entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		IssueDate:      inv.IssueDate.Format(dateLayout),
		SaleDate:       inv.SaleDate.Format(dateLayout),
		Currency:       inv.Currency.String(),
		Status:         inv.Status.String(),
		IsPaid:         inv.IsPaid,
		PaidAt:         inv.PaidAt,
		Notes:          inv.Notes,
		CustomerID:     inv.CustomerID,
		Items:          make([]ItemResponse, 0, len(inv.Items)),
		Subtotal:       money(inv.Subtotal),
		VatAmount:      money(inv.VatAmount),
		Total:          money(inv.Total),
		TotalFormatted: calculator.FormatAmount(inv.Total, inv.Currency),
		CanBeEdited:    lifecycle.CanBeEdited(&inv),
		CanBeDeleted:   lifecycle.CanBeDeleted(&inv),
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}

	if inv.DueDate != nil {
		dueDate := inv.DueDate.Format(dateLayout)
		resp.DueDate = &dueDate
	}

	if inv.PaymentMethod != nil {
		method := string(*inv.PaymentMethod)
		resp.PaymentMethod = &method
	}

	for _, item := range inv.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity.StringFixed(entity.QuantityScale),
			Unit:        string(item.Unit),
			UnitPrice:   money(item.UnitPrice),
			VatRate:     item.VatRate.String(),
			SortOrder:   item.SortOrder,
			NetAmount:   money(item.NetAmount),
			VatAmount:   money(item.VatAmount),
			GrossAmount: money(item.GrossAmount),
		})
	}

	return resp
}

func invoicesToAPI(invoices []entity.Invoice) []InvoiceResponse {
	resp := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, invoiceToAPI(inv))
	}

	return resp
}

func validationToAPI(v calculator.Validation) ValidationResponse {
	resp := ValidationResponse{
		Valid:      v.Valid,
		Mismatches: make([]MismatchResponse, 0, len(v.Mismatches)),
	}

	for _, m := range v.Mismatches {
		resp.Mismatches = append(resp.Mismatches, MismatchResponse{
			Field:       m.Field,
			Stored:      money(m.Stored),
			Calculated:  money(m.Calculated),
			Description: m.String(),
		})
	}

	return resp
}

func breakdownToAPI(t calculator.Totals) VatBreakdownResponse {
	resp := VatBreakdownResponse{
		Rates:     make([]RateTotalsResponse, 0, len(t.Breakdown)),
		Subtotal:  money(t.Subtotal),
		VatAmount: money(t.VatAmount),
		Total:     money(t.Total),
	}

	for _, rt := range t.Breakdown {
		resp.Rates = append(resp.Rates, RateTotalsResponse{
			VatRate: rt.Rate.String(),
			Net:     money(rt.Net),
			Vat:     money(rt.Vat),
			Gross:   money(rt.Gross),
		})
	}

	return resp
}

func parsedNumberToAPI(number string, p numbering.Parsed, ok bool) ParsedNumberResponse {
	resp := ParsedNumberResponse{Number: number, IsValid: ok}
	if ok {
		resp.Year = p.Year
		resp.Month = p.Month
		resp.Sequence = p.Sequence
	}

	return resp
}

func money(d decimal.Decimal) string {
	return d.StringFixed(entity.MoneyScale)
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", entity.ErrInvalidArgument, field)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", entity.ErrInvalidArgument, field, s)
	}

	return t, nil
}
