// Package job runs background maintenance, such as the nightly audit that recomputes
// stored invoice totals, on a fixed interval next to the HTTP server.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/lljaworski/invoicing/pkg/metrics"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultPanic = "panic"
)

// Func is one run of a job. It should return once ctx is done.
type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Service runs registered jobs immediately and then on every interval tick
// until the context passed to Start is done. A failing or panicking run is logged
// and counted, and the job keeps its schedule.
type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn Func) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob skips the job when it is disabled in config or has no interval.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Service {
	if !isEnabled || interval <= 0 {
		slog.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		s.run(ctx, l, j)

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) run(ctx context.Context, l *slog.Logger, j job) {
	start := time.Now()

	l.Debug("job started")

	result, err := s.withRecover(ctx, l, j)

	elapsed := time.Since(start)
	metrics.JobRuns.WithLabelValues(j.name, result).Inc()
	metrics.JobDuration.WithLabelValues(j.name).Observe(elapsed.Seconds())

	if err != nil {
		l.Error("job failed", "error", err, "elapsed", elapsed)
		return
	}

	l.Debug("job done", "elapsed", elapsed)
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))

			result, err = resultPanic, fmt.Errorf("panic: %v", r)
		}
	}()

	err = j.fn(ctx)
	if err != nil {
		return resultError, err
	}

	return resultOK, nil
}

// Stop waits for running jobs. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
