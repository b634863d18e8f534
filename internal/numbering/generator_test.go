package numbering_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/internal/mocks"
	"github.com/lljaworski/invoicing/internal/numbering"
)

type generatorMocks struct {
	seq       *mocks.MockSequenceSource
	uniq      *mocks.MockUniquenessChecker
	templates *mocks.MockTemplateSource
}

func newGenerator(t *testing.T, opts ...numbering.Option) (*numbering.Generator, generatorMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := generatorMocks{
		seq:       mocks.NewMockSequenceSource(ctrl),
		uniq:      mocks.NewMockUniquenessChecker(ctrl),
		templates: mocks.NewMockTemplateSource(ctrl),
	}

	return numbering.NewGenerator(m.seq, m.uniq, m.templates, opts...), m
}

var issueDate = time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		seq      int
		want     string
	}{
		{name: "first of month", template: numbering.DefaultTemplate, seq: 1, want: "FV/2024/10/0001"},
		{name: "four digits", template: numbering.DefaultTemplate, seq: 9999, want: "FV/2024/10/9999"},
		{name: "empty means default", template: "", seq: 12, want: "FV/2024/10/0012"},
		{name: "custom width", template: "{year}-{month}-{number:6}", seq: 3, want: "2024-10-000003"},
		{name: "invalid stored template", template: "FV/{number}", seq: 2, want: "FV/2024/10/0002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, m := newGenerator(t)
			ctx := context.Background()

			m.templates.EXPECT().NumberTemplate(ctx).Return(tt.template, nil)
			m.seq.EXPECT().NextSequenceNumber(ctx, 2024, 10).Return(tt.seq, nil)

			got, err := g.Generate(ctx, issueDate)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_GenerateErrors(t *testing.T) {
	t.Parallel()

	errDB := errors.New("connection refused")

	t.Run("sequence source", func(t *testing.T) {
		t.Parallel()

		g, m := newGenerator(t)
		m.templates.EXPECT().NumberTemplate(gomock.Any()).Return(numbering.DefaultTemplate, nil)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(0, errDB)

		_, err := g.Generate(context.Background(), issueDate)
		require.ErrorIs(t, err, errDB)
	})

	t.Run("template source", func(t *testing.T) {
		t.Parallel()

		g, m := newGenerator(t)
		m.templates.EXPECT().NumberTemplate(gomock.Any()).Return("", errDB)

		_, err := g.Generate(context.Background(), issueDate)
		require.ErrorIs(t, err, errDB)
	})

	t.Run("sequence overflow past length limit", func(t *testing.T) {
		t.Parallel()

		g, m := newGenerator(t)
		m.templates.EXPECT().NumberTemplate(gomock.Any()).Return(strings.Repeat("X", 30)+"/{year}/{month}/{number}", nil)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(10000, nil)

		_, err := g.Generate(context.Background(), issueDate)
		require.ErrorIs(t, err, entity.ErrInvalidTemplate)
	})
}

func TestGenerator_GenerateWithRetry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 15, 14, 3, 9, 0, time.UTC)

	newRetrying := func(t *testing.T) (*numbering.Generator, generatorMocks, *[]time.Duration) {
		t.Helper()

		var (
			mu    sync.Mutex
			slept []time.Duration
		)

		g, m := newGenerator(t,
			numbering.WithClock(func() time.Time { return now }),
			numbering.WithSleep(func(_ context.Context, d time.Duration) error {
				mu.Lock()
				defer mu.Unlock()

				slept = append(slept, d)

				return nil
			}),
		)

		m.templates.EXPECT().NumberTemplate(gomock.Any()).Return(numbering.DefaultTemplate, nil).AnyTimes()

		return g, m, &slept
	}

	t.Run("free on first attempt", func(t *testing.T) {
		t.Parallel()

		g, m, slept := newRetrying(t)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(7, nil)
		m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0007").Return(false, nil)

		got, err := g.GenerateWithRetry(context.Background(), issueDate, numbering.DefaultMaxRetries)
		require.NoError(t, err)
		require.Equal(t, "FV/2024/10/0007", got)
		require.Empty(t, *slept)
	})

	t.Run("collision then free", func(t *testing.T) {
		t.Parallel()

		g, m, slept := newRetrying(t)
		gomock.InOrder(
			m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(7, nil),
			m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0007").Return(true, nil),
			m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(8, nil),
			m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0008").Return(false, nil),
		)

		got, err := g.GenerateWithRetry(context.Background(), issueDate, numbering.DefaultMaxRetries)
		require.NoError(t, err)
		require.Equal(t, "FV/2024/10/0008", got)
		require.Len(t, *slept, 1)
		require.GreaterOrEqual(t, (*slept)[0], 10*time.Millisecond)
		require.LessOrEqual(t, (*slept)[0], 50*time.Millisecond)
	})

	t.Run("exhausted retries fall back to timestamp suffix", func(t *testing.T) {
		t.Parallel()

		g, m, slept := newRetrying(t)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(7, nil).Times(4)
		m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0007").Return(true, nil).Times(3)

		got, err := g.GenerateWithRetry(context.Background(), issueDate, 3)
		require.NoError(t, err)
		require.Equal(t, "FV/2024/10/0007-140309", got)
		require.Len(t, *slept, 2)
	})

	t.Run("non-positive retries use default", func(t *testing.T) {
		t.Parallel()

		g, m, slept := newRetrying(t)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(1, nil).Times(numbering.DefaultMaxRetries + 1)
		m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0001").Return(true, nil).Times(numbering.DefaultMaxRetries)

		got, err := g.GenerateWithRetry(context.Background(), issueDate, 0)
		require.NoError(t, err)
		require.Equal(t, "FV/2024/10/0001-140309", got)
		require.Len(t, *slept, numbering.DefaultMaxRetries-1)
	})

	t.Run("uniqueness check error", func(t *testing.T) {
		t.Parallel()

		errDB := errors.New("timeout")

		g, m, _ := newRetrying(t)
		m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(1, nil)
		m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0001").Return(false, errDB)

		_, err := g.GenerateWithRetry(context.Background(), issueDate, 3)
		require.ErrorIs(t, err, errDB)
	})
}

func TestGenerator_GenerateWithRetry_ContextCancelled(t *testing.T) {
	t.Parallel()

	g, m := newGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.templates.EXPECT().NumberTemplate(gomock.Any()).Return(numbering.DefaultTemplate, nil)
	m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(1, nil)
	m.uniq.EXPECT().ExistsByNumber(gomock.Any(), "FV/2024/10/0001").DoAndReturn(
		func(context.Context, string) (bool, error) {
			cancel()
			return true, nil
		})

	_, err := g.GenerateWithRetry(ctx, issueDate, 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_IsValidFormatAndParse(t *testing.T) {
	t.Parallel()

	g, m := newGenerator(t)
	ctx := context.Background()

	m.templates.EXPECT().NumberTemplate(ctx).Return("{number:6}/{year}/{month}", nil).AnyTimes()

	ok, err := g.IsValidFormat(ctx, "000123/2024/10")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.IsValidFormat(ctx, "FV/2024/10/0001")
	require.NoError(t, err)
	require.False(t, ok)

	p, ok, err := g.Parse(ctx, "000123/2024/13")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, numbering.Parsed{Year: 2024, Month: 13, Sequence: 123}, p)

	_, ok, err = g.Parse(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGenerator_ConcurrentTemplateUse(t *testing.T) {
	t.Parallel()

	g, m := newGenerator(t)

	m.templates.EXPECT().NumberTemplate(gomock.Any()).Return(numbering.DefaultTemplate, nil).AnyTimes()
	m.seq.EXPECT().NextSequenceNumber(gomock.Any(), 2024, 10).Return(1, nil).AnyTimes()

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := g.Generate(context.Background(), issueDate)
			require.NoError(t, err)
			require.Equal(t, "FV/2024/10/0001", got)
		}()
	}

	wg.Wait()
}
