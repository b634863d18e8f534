package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/lljaworski/invoicing/internal/calculator"
	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/internal/lifecycle"
	"github.com/lljaworski/invoicing/internal/numbering"
	"github.com/lljaworski/invoicing/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	auditPageLimit = 100

	// attempts to insert a new invoice when its number was taken after the uniqueness check
	createAttempts = 3
)

type Repository interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) error
	UpdateInvoice(ctx context.Context, inv entity.Invoice, replaceItems bool) error
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	InvoiceByNumber(ctx context.Context, number string) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
}

type Preferences interface {
	NumberTemplate(ctx context.Context) (string, error)
	SetNumberTemplate(ctx context.Context, template string) error
}

type NumberGenerator interface {
	Generate(ctx context.Context, issueDate time.Time) (string, error)
	GenerateWithRetry(ctx context.Context, issueDate time.Time, maxRetries int) (string, error)
	Parse(ctx context.Context, number string) (numbering.Parsed, bool, error)
}

type Producer interface {
	SendInvoiceEvent(ctx context.Context, event entity.InvoiceEvent)
}

type Service struct {
	repo     Repository
	prefs    Preferences
	numbers  NumberGenerator
	producer Producer
	machine  *lifecycle.Machine

	now        func() time.Time
	maxRetries int
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithMaxNumberRetries(n int) Option {
	return func(s *Service) {
		s.maxRetries = n
	}
}

func New(repo Repository, prefs Preferences, numbers NumberGenerator, producer Producer, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		prefs:      prefs,
		numbers:    numbers,
		producer:   producer,
		now:        time.Now,
		maxRetries: numbering.DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.machine = lifecycle.New(lifecycle.WithClock(s.now))

	return s
}

// CreateInvoice validates the input, computes all amounts and assigns a number.
// New invoices are ISSUED unless a draft is requested.
func (s *Service) CreateInvoice(ctx context.Context, p entity.CreateInvoiceParams) (entity.Invoice, error) {
	err := validateInput(&p.InvoiceHeader, p.Items)
	if err != nil {
		return entity.Invoice{}, err
	}

	now := s.now()

	inv := entity.Invoice{
		ID:        uuid.Must(uuid.NewV4()),
		Status:    entity.InvoiceStatusIssued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if p.Draft {
		inv.Status = entity.InvoiceStatusDraft
	}

	applyHeader(&inv, p.InvoiceHeader)

	err = applyItems(&inv, p.Items)
	if err != nil {
		return entity.Invoice{}, err
	}

	for attempt := 1; ; attempt++ {
		inv.Number, err = s.numbers.GenerateWithRetry(ctx, inv.IssueDate, s.maxRetries)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("generate number: %w", err)
		}

		err = s.repo.CreateInvoice(ctx, inv)
		if err == nil {
			break
		}

		if !errors.Is(err, entity.ErrAlreadyExists) || attempt == createAttempts {
			return entity.Invoice{}, fmt.Errorf("create invoice %s: %w", inv.Number, err)
		}

		metrics.NumberCollisions.Inc()
		slog.WarnContext(ctx, "invoice number taken on insert, generating a new one",
			"number", inv.Number, "attempt", attempt)
	}

	slog.InfoContext(ctx, "invoice created",
		"invoice_id", inv.ID, "number", inv.Number, "status", inv.Status, "total", inv.Total.StringFixed(entity.MoneyScale))

	s.publish(ctx, entity.InvoiceEventCreated, inv)

	return inv, nil
}

// UpdateInvoice replaces the header and the whole item list of an editable invoice.
// The number and the status are kept.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, p entity.UpdateInvoiceParams) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	err = s.machine.EnsureEditable(&inv)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = validateInput(&p.InvoiceHeader, p.Items)
	if err != nil {
		return entity.Invoice{}, err
	}

	applyHeader(&inv, p.InvoiceHeader)

	err = applyItems(&inv, p.Items)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.UpdatedAt = s.now()

	err = s.repo.UpdateInvoice(ctx, inv, true)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %s: %w", id, err)
	}

	s.publish(ctx, entity.InvoiceEventUpdated, inv)

	return inv, nil
}

func (s *Service) IssueInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return s.apply(ctx, id, lifecycle.ActionIssue, entity.InvoiceEventIssued, s.machine.Issue)
}

func (s *Service) MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidAt *time.Time) (entity.Invoice, error) {
	return s.apply(ctx, id, lifecycle.ActionMarkAsPaid, entity.InvoiceEventPaid, func(inv *entity.Invoice) error {
		return s.machine.MarkAsPaid(inv, paidAt)
	})
}

// MarkInvoicePaidByNumber is MarkInvoicePaid for payment notifications that only know
// the number. An amount below the invoice total leaves the invoice unpaid.
func (s *Service) MarkInvoicePaidByNumber(
	ctx context.Context, number string, amount decimal.Decimal, paidAt *time.Time,
) (entity.Invoice, error) {
	inv, err := s.repo.InvoiceByNumber(ctx, number)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", number, err)
	}

	if amount.LessThan(inv.Total) {
		return entity.Invoice{}, fmt.Errorf("invoice %s: %w: paid %s of %s", number, entity.ErrUnderpaid,
			amount.StringFixed(entity.MoneyScale), inv.Total.StringFixed(entity.MoneyScale))
	}

	return s.MarkInvoicePaid(ctx, inv.ID, paidAt)
}

func (s *Service) CancelInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return s.apply(ctx, id, lifecycle.ActionCancel, entity.InvoiceEventCancelled, s.machine.Cancel)
}

// DeleteInvoice soft deletes a draft or cancelled invoice. Its number stays taken.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	_, err := s.apply(ctx, id, lifecycle.ActionDelete, entity.InvoiceEventDeleted, s.machine.SoftDelete)
	return err
}

func (s *Service) apply(
	ctx context.Context,
	id uuid.UUID,
	action string,
	event entity.InvoiceEventType,
	fn func(inv *entity.Invoice) error,
) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	from := inv.Status

	err = fn(&inv)
	if err != nil {
		metrics.StatusTransitions.WithLabelValues(action, "rejected").Inc()
		return entity.Invoice{}, err
	}

	inv.UpdatedAt = s.now()

	err = s.repo.UpdateInvoice(ctx, inv, false)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%s invoice %s: %w", action, id, err)
	}

	metrics.StatusTransitions.WithLabelValues(action, "ok").Inc()
	slog.InfoContext(ctx, "invoice "+action,
		"invoice_id", inv.ID, "number", inv.Number, "from", from, "to", inv.Status)

	s.publish(ctx, event, inv)

	return inv, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	return inv, nil
}

func (s *Service) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Invoices(ctx, f)
}

func (s *Service) ValidateInvoiceTotals(ctx context.Context, id uuid.UUID) (calculator.Validation, error) {
	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return calculator.Validation{}, err
	}

	return calculator.ValidateTotals(inv), nil
}

func (s *Service) VatBreakdown(ctx context.Context, id uuid.UUID) (calculator.Totals, error) {
	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return calculator.Totals{}, err
	}

	return calculator.ComputeInvoiceTotals(inv.Items), nil
}

// AuditTotals recalculates every invoice and logs the ones whose stored amounts
// disagree. Nothing is corrected.
func (s *Service) AuditTotals(ctx context.Context) error {
	f := entity.InvoiceFilter{
		Page:    1,
		Limit:   auditPageLimit,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.ASC,
	}

	var checked, invalid int

	for {
		invoices, total, err := s.repo.Invoices(ctx, f)
		if err != nil {
			return fmt.Errorf("list invoices page %d: %w", f.Page, err)
		}

		for _, inv := range invoices {
			checked++

			v := calculator.ValidateTotals(inv)
			if v.Valid {
				continue
			}

			invalid++

			metrics.TotalsMismatches.Add(float64(len(v.Mismatches)))
			slog.WarnContext(ctx, "invoice totals mismatch",
				"invoice_id", inv.ID, "number", inv.Number, "mismatches", v.Messages())
		}

		if len(invoices) == 0 || f.Page*f.Limit >= uint64(total) {
			break
		}

		f.Page++
	}

	slog.InfoContext(ctx, "invoice totals audited", "checked", checked, "invalid", invalid)

	return nil
}

func (s *Service) NumberFormat(ctx context.Context) (string, error) {
	template, err := s.prefs.NumberTemplate(ctx)
	if err != nil {
		return "", fmt.Errorf("get number format: %w", err)
	}

	if template == "" {
		return numbering.DefaultTemplate, nil
	}

	return template, nil
}

func (s *Service) SetNumberFormat(ctx context.Context, template string) error {
	_, err := numbering.ParseTemplate(template)
	if err != nil {
		return err
	}

	err = s.prefs.SetNumberTemplate(ctx, template)
	if err != nil {
		return fmt.Errorf("set number format: %w", err)
	}

	slog.InfoContext(ctx, "number format changed", "template", template)

	return nil
}

// PreviewNumber shows the number the next invoice issued on issueDate would get.
// Nothing is reserved.
func (s *Service) PreviewNumber(ctx context.Context, issueDate time.Time) (string, error) {
	if issueDate.IsZero() {
		issueDate = s.now()
	}

	return s.numbers.Generate(ctx, issueDate)
}

// ParseNumber reads year, month and sequence back from a number. ok is false when
// the number does not follow the current format.
func (s *Service) ParseNumber(ctx context.Context, number string) (numbering.Parsed, bool, error) {
	p, ok, err := s.numbers.Parse(ctx, number)
	if err != nil {
		return numbering.Parsed{}, false, fmt.Errorf("parse number %q: %w", number, err)
	}

	return p, ok, nil
}

func (s *Service) publish(ctx context.Context, t entity.InvoiceEventType, inv entity.Invoice) {
	if s.producer == nil {
		return
	}

	s.producer.SendInvoiceEvent(ctx, entity.NewInvoiceEvent(t, inv, s.now()))
}

func validateInput(h *entity.InvoiceHeader, items []entity.ItemInput) error {
	if h.Currency == "" {
		h.Currency = entity.DefaultCurrency
	}

	return errors.Join(h.Validate(), entity.ValidateItems(items))
}

func applyHeader(inv *entity.Invoice, h entity.InvoiceHeader) {
	inv.IssueDate = h.IssueDate
	inv.SaleDate = h.SaleDate
	inv.DueDate = h.DueDate
	inv.Currency = h.Currency
	inv.PaymentMethod = h.PaymentMethod
	inv.Notes = h.Notes
	inv.CustomerID = h.CustomerID
}

func applyItems(inv *entity.Invoice, inputs []entity.ItemInput) error {
	err := calculator.ApplyItems(inv, inputs)
	if err != nil {
		return err
	}

	for i := range inv.Items {
		inv.Items[i].ID = uuid.Must(uuid.NewV4())
	}

	return nil
}

func normalizeFilter(f entity.InvoiceFilter) (entity.InvoiceFilter, error) {
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit == 0 {
		f.Limit = DefaultPageLimit
	}

	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}

	if f.SortBy == "" {
		f.SortBy = entity.SortByCreatedAt
	}

	if f.OrderBy == "" {
		f.OrderBy = entity.DESC
	}

	if !f.SortBy.IsValid() {
		return f, fmt.Errorf("%w: unknown sort column %q", entity.ErrInvalidArgument, f.SortBy)
	}

	if !f.OrderBy.IsValid() {
		return f, fmt.Errorf("%w: unknown order %q", entity.ErrInvalidArgument, f.OrderBy)
	}

	if f.Status != nil && !f.Status.IsValid() {
		return f, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidArgument, *f.Status)
	}

	if f.Currency != nil {
		err := f.Currency.Validate()
		if err != nil {
			return f, err
		}
	}

	return f, nil
}
