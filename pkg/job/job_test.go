package job

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestService_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := NewService().RegisterJob("tick", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, calls.Load())
}

func TestService_SurvivesErrorsAndPanics(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewService().RegisterJob("flaky", 5*time.Millisecond, func(context.Context) error {
		switch calls.Add(1) {
		case 1:
			panic("boom")
		case 2:
			return errors.New("failed")
		}

		return nil
	})
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_TryRegisterJob(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	s := NewService().
		TryRegisterJob(false, "disabled", time.Second, noop).
		TryRegisterJob(true, "zero interval", 0, noop).
		RegisterJob("enabled", time.Second, noop)

	require.Len(t, s.jobs, 1)
	require.Equal(t, "enabled", s.jobs[0].name)
}

func TestService_WithRecover(t *testing.T) {
	t.Parallel()

	failed := errors.New("failed")

	tests := []struct {
		name       string
		fn         Func
		wantResult string
		wantErr    bool
	}{
		{name: "ok", fn: func(context.Context) error { return nil }, wantResult: resultOK},
		{name: "error", fn: func(context.Context) error { return failed }, wantResult: resultError, wantErr: true},
		{name: "panic", fn: func(context.Context) error { panic("boom") }, wantResult: resultPanic, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewService().withRecover(context.Background(), slog.Default(), job{name: tt.name, fn: tt.fn})
			require.Equal(t, tt.wantResult, result)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
