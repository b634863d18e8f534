// Package numbering builds invoice numbers from a configurable template such as
// FV/{year}/{month}/{number} and recognises numbers produced by it.
package numbering

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=generator.go -destination=../mocks/numbering.go -package=mocks -typed

const (
	DefaultMaxRetries = 5

	minBackoff = 10 * time.Millisecond
	maxBackoff = 50 * time.Millisecond

	fallbackSuffixLayout = "150405"

	// FallbackSuffixLen is the length of the "-HHMMSS" suffix added once retries run out.
	FallbackSuffixLen = len("-" + fallbackSuffixLayout)
)

type SequenceSource interface {
	// NextSequenceNumber returns the count of non-deleted invoices issued in year/month plus one.
	NextSequenceNumber(ctx context.Context, year, month int) (int, error)
}

type UniquenessChecker interface {
	// ExistsByNumber reports whether any invoice, deleted ones included, carries number.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

type TemplateSource interface {
	NumberTemplate(ctx context.Context) (string, error)
}

type Generator struct {
	seq       SequenceSource
	uniq      UniquenessChecker
	templates TemplateSource

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	parsed map[string]Template
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(g *Generator) {
		g.sleep = sleep
	}
}

func NewGenerator(seq SequenceSource, uniq UniquenessChecker, templates TemplateSource, opts ...Option) *Generator {
	g := &Generator{
		seq:       seq,
		uniq:      uniq,
		templates: templates,
		now:       time.Now,
		sleep:     sleepContext,
		parsed:    make(map[string]Template),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate formats the next number for the month of issueDate. It does not check
// uniqueness; concurrent callers can get the same number.
func (g *Generator) Generate(ctx context.Context, issueDate time.Time) (string, error) {
	t, err := g.Template(ctx)
	if err != nil {
		return "", err
	}

	year, month := issueDate.Year(), int(issueDate.Month())

	seq, err := g.seq.NextSequenceNumber(ctx, year, month)
	if err != nil {
		return "", fmt.Errorf("next sequence number for %04d-%02d: %w", year, month, err)
	}

	number := t.Format(year, month, seq)
	if utf8.RuneCountInString(number)+FallbackSuffixLen > entity.MaxNumberLen {
		return "", fmt.Errorf("%w: sequence %d makes number %s too long", entity.ErrInvalidTemplate, seq, number)
	}

	return number, nil
}

// GenerateWithRetry generates a number that is not taken yet. After maxRetries
// collisions it gives up on the clean format and appends the current HHMMSS to a
// freshly generated number.
func (g *Generator) GenerateWithRetry(ctx context.Context, issueDate time.Time, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		number, err := g.Generate(ctx, issueDate)
		if err != nil {
			return "", err
		}

		exists, err := g.uniq.ExistsByNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("check number %s: %w", number, err)
		}

		if !exists {
			return number, nil
		}

		metrics.NumberCollisions.Inc()
		slog.DebugContext(ctx, "invoice number taken", "number", number, "attempt", attempt)

		if attempt == maxRetries {
			break
		}

		err = g.sleep(ctx, backoff())
		if err != nil {
			return "", err
		}
	}

	number, err := g.Generate(ctx, issueDate)
	if err != nil {
		return "", err
	}

	number = number + "-" + g.now().Format(fallbackSuffixLayout)

	metrics.NumberFallbacks.Inc()
	slog.WarnContext(ctx, "invoice number retries exhausted, using timestamp suffix",
		"number", number, "retries", maxRetries)

	return number, nil
}

// IsValidFormat checks the digit shape of number against the current template.
func (g *Generator) IsValidFormat(ctx context.Context, number string) (bool, error) {
	t, err := g.Template(ctx)
	if err != nil {
		return false, err
	}

	return t.Match(number), nil
}

func (g *Generator) Parse(ctx context.Context, number string) (Parsed, bool, error) {
	t, err := g.Template(ctx)
	if err != nil {
		return Parsed{}, false, err
	}

	p, ok := t.Parse(number)

	return p, ok, nil
}

// Template returns the current template, parsed. Templates are validated when they are
// stored, so an unparsable one here is logged and replaced by the default.
func (g *Generator) Template(ctx context.Context) (Template, error) {
	raw, err := g.templates.NumberTemplate(ctx)
	if err != nil {
		return Template{}, fmt.Errorf("number template: %w", err)
	}

	if raw == "" {
		raw = DefaultTemplate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.parsed[raw]; ok {
		return t, nil
	}

	t, err := ParseTemplate(raw)
	if err != nil {
		slog.ErrorContext(ctx, "stored number template is invalid, using default",
			"template", raw, "error", err)

		t, err = ParseTemplate(DefaultTemplate)
		if err != nil {
			return Template{}, err
		}
	}

	g.parsed[raw] = t

	return t, nil
}

func backoff() time.Duration {
	return minBackoff + rand.N(maxBackoff-minBackoff+1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
