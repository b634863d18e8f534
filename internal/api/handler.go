package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/lljaworski/invoicing/internal/calculator"
	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/internal/numbering"
)

// @title Invoicing API
// @version 1.0
// @description Invoices with VAT calculation, status lifecycle and configurable numbering
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateInvoice(ctx context.Context, p entity.CreateInvoiceParams) (entity.Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, p entity.UpdateInvoiceParams) (entity.Invoice, error)
	IssueInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidAt *time.Time) (entity.Invoice, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	ValidateInvoiceTotals(ctx context.Context, id uuid.UUID) (calculator.Validation, error)
	VatBreakdown(ctx context.Context, id uuid.UUID) (calculator.Totals, error)
	NumberFormat(ctx context.Context) (string, error)
	SetNumberFormat(ctx context.Context, template string) error
	PreviewNumber(ctx context.Context, issueDate time.Time) (string, error)
	ParseNumber(ctx context.Context, number string) (numbering.Parsed, bool, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// CreateInvoice creates an invoice
// @Summary Create invoice
// @Description Computes item amounts and totals, assigns the next number. The invoice is ISSUED unless draft is set.
// @Tags invoices
// @Accept json
// @Produce json
// @Param InvoiceRequest body InvoiceRequest true "Invoice"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Router /invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	params, err := req.createParams()
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to create invoice")
		return
	}

	inv, err := h.s.CreateInvoice(ctx, params)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoiceToAPI(inv))
}

// UpdateInvoice replaces the invoice header and items
// @Summary Update invoice
// @Description Only DRAFT and ISSUED invoices can be edited. The item list is replaced as a whole.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param InvoiceRequest body InvoiceRequest true "Invoice"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or ID"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice can not be edited"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to update invoice"
// @Router /invoices/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	var req InvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	params, err := req.updateParams()
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to update invoice")
		return
	}

	inv, err := h.s.UpdateInvoice(ctx, id, params)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to update invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

// Invoice returns one invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to get invoice"
// @Router /invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	inv, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

// Invoices lists invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "DRAFT, ISSUED, PAID or CANCELLED"
// @Param currency query string false "Currency code"
// @Param customerId query string false "Customer ID"
// @Param issuedFrom query string false "YYYY-MM-DD"
// @Param issuedTo query string false "YYYY-MM-DD"
// @Param number query string false "Part of the number"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param sortBy query string false "number, issue_date, total or created_at"
// @Param orderBy query string false "asc or desc"
// @Success 200 {object} InvoicesResponse
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Failed to get invoices"
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseInvoiceFilter(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid filter")
		return
	}

	invoices, totalCount, err := h.s.Invoices(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to get invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoicesResponse{Invoices: invoicesToAPI(invoices), TotalCount: totalCount})
}

// IssueInvoice moves a draft to ISSUED
// @Summary Issue invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Status change not allowed"
// @Failure 500 {object} ErrorResponse "Failed to issue invoice"
// @Router /invoices/{id}/issue [post]
// @Security BearerAuth
func (h *Handler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.s.IssueInvoice, "failed to issue invoice")
}

// CancelInvoice moves an issued invoice to CANCELLED
// @Summary Cancel invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Status change not allowed"
// @Failure 500 {object} ErrorResponse "Failed to cancel invoice"
// @Router /invoices/{id}/cancel [post]
// @Security BearerAuth
func (h *Handler) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.s.CancelInvoice, "failed to cancel invoice")
}

// MarkInvoicePaid marks an invoice as paid
// @Summary Mark invoice as paid
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param MarkPaidRequest body MarkPaidRequest false "Payment time, now when empty"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Already paid or status change not allowed"
// @Failure 500 {object} ErrorResponse "Failed to mark invoice as paid"
// @Router /invoices/{id}/pay [post]
// @Security BearerAuth
func (h *Handler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MarkPaidRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	h.transition(w, r, func(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
		return h.s.MarkInvoicePaid(ctx, id, req.PaidAt)
	}, "failed to mark invoice as paid")
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (entity.Invoice, error),
	msg string,
) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	inv, err := fn(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, msg)
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

// DeleteInvoice soft deletes an invoice
// @Summary Delete invoice
// @Description Only DRAFT and CANCELLED invoices can be deleted. The number is never reused.
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice can not be deleted"
// @Failure 500 {object} ErrorResponse "Failed to delete invoice"
// @Router /invoices/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	err := h.s.DeleteInvoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ValidateTotals recomputes the invoice amounts and reports differences
// @Summary Validate invoice totals
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} ValidationResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to validate totals"
// @Router /invoices/{id}/totals/validation [get]
// @Security BearerAuth
func (h *Handler) ValidateTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	v, err := h.s.ValidateInvoiceTotals(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to validate totals")
		return
	}

	SendJSON(ctx, w, http.StatusOK, validationToAPI(v))
}

// VatBreakdown returns the amounts grouped by VAT rate
// @Summary VAT breakdown
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} VatBreakdownResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to get VAT breakdown"
// @Router /invoices/{id}/vat-breakdown [get]
// @Security BearerAuth
func (h *Handler) VatBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := invoiceID(ctx, w, r)
	if !ok {
		return
	}

	t, err := h.s.VatBreakdown(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to get VAT breakdown")
		return
	}

	SendJSON(ctx, w, http.StatusOK, breakdownToAPI(t))
}

// NextNumber previews the number of the next invoice
// @Summary Next invoice number
// @Description The number is not reserved.
// @Tags invoices
// @Produce json
// @Param issueDate query string false "YYYY-MM-DD, today when empty"
// @Success 200 {object} NextNumberResponse
// @Failure 422 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse "Failed to generate number"
// @Router /invoices/next-number [get]
// @Security BearerAuth
func (h *Handler) NextNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var issueDate time.Time

	if s := r.URL.Query().Get("issueDate"); s != "" {
		var err error

		issueDate, err = parseDate("issueDate", s)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid date")
			return
		}
	}

	number, err := h.s.PreviewNumber(ctx, issueDate)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to generate number")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NextNumberResponse{Number: number})
}

// ParseNumber checks a number against the current format
// @Summary Parse invoice number
// @Tags preferences
// @Produce json
// @Param number query string true "Invoice number"
// @Success 200 {object} ParsedNumberResponse
// @Failure 422 {object} ErrorResponse "Number is missing"
// @Failure 500 {object} ErrorResponse "Failed to parse number"
// @Router /preferences/number-format/parse [get]
// @Security BearerAuth
func (h *Handler) ParseNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number := r.URL.Query().Get("number")
	if number == "" {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, entity.ErrInvalidArgument, "number is required")
		return
	}

	p, ok, err := h.s.ParseNumber(ctx, number)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to parse number")
		return
	}

	SendJSON(ctx, w, http.StatusOK, parsedNumberToAPI(number, p, ok))
}

// NumberFormat returns the invoice number template
// @Summary Get number format
// @Tags preferences
// @Produce json
// @Success 200 {object} NumberFormatResponse
// @Failure 500 {object} ErrorResponse "Failed to get number format"
// @Router /preferences/number-format [get]
// @Security BearerAuth
func (h *Handler) NumberFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	template, err := h.s.NumberFormat(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to get number format")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NumberFormatResponse{Template: template})
}

// SetNumberFormat changes the invoice number template
// @Summary Set number format
// @Description The template must contain {year}, {month} and {number} or {number:N}.
// @Tags preferences
// @Accept json
// @Produce json
// @Param NumberFormatRequest body NumberFormatRequest true "Template"
// @Success 200 {object} NumberFormatResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Invalid template"
// @Failure 500 {object} ErrorResponse "Failed to set number format"
// @Router /preferences/number-format [put]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) SetNumberFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NumberFormatRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	err = h.s.SetNumberFormat(ctx, req.Template)
	if err != nil {
		sendServiceErr(ctx, w, err, "failed to set number format")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NumberFormatResponse(req))
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "service is unavailable")
		return
	}
}

func invoiceID(ctx context.Context, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid invoice id")
		return uuid.Nil, false
	}

	return id, true
}

func parseInvoiceFilter(q url.Values) (entity.InvoiceFilter, error) {
	filter := entity.InvoiceFilter{
		SortBy:  entity.InvoiceSortCol(q.Get("sortBy")),
		OrderBy: entity.OrderByCol(q.Get("orderBy")),
	}

	if s := q.Get("page"); s != "" {
		page, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: page %q", entity.ErrInvalidArgument, s)
		}

		filter.Page = page
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: limit %q", entity.ErrInvalidArgument, s)
		}

		filter.Limit = limit
	}

	if s := q.Get("status"); s != "" {
		status := entity.InvoiceStatus(s)
		filter.Status = &status
	}

	if s := q.Get("currency"); s != "" {
		currency := entity.Currency(s)
		filter.Currency = &currency
	}

	if s := q.Get("customerId"); s != "" {
		customerID, err := uuid.FromString(s)
		if err != nil {
			return filter, fmt.Errorf("%w: customerId %q", entity.ErrInvalidArgument, s)
		}

		filter.CustomerID = &customerID
	}

	if s := q.Get("issuedFrom"); s != "" {
		from, err := parseDate("issuedFrom", s)
		if err != nil {
			return filter, err
		}

		filter.IssuedFrom = &from
	}

	if s := q.Get("issuedTo"); s != "" {
		to, err := parseDate("issuedTo", s)
		if err != nil {
			return filter, err
		}

		filter.IssuedTo = &to
	}

	if s := q.Get("number"); s != "" {
		filter.NumberPattern = &s
	}

	return filter, nil
}
