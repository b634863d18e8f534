package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lljaworski/invoicing/internal/api"
	"github.com/lljaworski/invoicing/internal/api/events"
	"github.com/lljaworski/invoicing/internal/cache"
	"github.com/lljaworski/invoicing/internal/numbering"
	"github.com/lljaworski/invoicing/internal/repository"
	"github.com/lljaworski/invoicing/internal/service"
	"github.com/lljaworski/invoicing/pkg/broker"
	"github.com/lljaworski/invoicing/pkg/config"
	"github.com/lljaworski/invoicing/pkg/job"
	"github.com/lljaworski/invoicing/pkg/logger"
	"github.com/lljaworski/invoicing/pkg/postgres"
	"github.com/lljaworski/invoicing/pkg/security"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("init logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	redisClient, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.WarnContext(ctx, "redis unavailable, preferences are not cached", "error", err)
	}

	if redisClient != nil {
		defer redisClient.Close()
	}

	prefs := cache.NewPreferences(repo, redisClient, cfg.Redis.TemplateTTL)

	numbers := numbering.NewGenerator(repo, repo, prefs)

	var producer service.Producer

	if cfg.Kafka.InvoiceEventsTopic != "" {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceEventsTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, prefs, numbers, producer, service.WithMaxNumberRetries(cfg.Numbering.MaxRetries))

	// Kafka consumers
	if cfg.Kafka.PaymentsTopic != "" {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.PaymentsTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.PaymentsTopic, eventHandler.OnPaymentReceived)
		consumer.Consume(ctx)
	}

	jobs := job.NewService().
		TryRegisterJob(cfg.Jobs.TotalsAuditEnabled, "audit_totals", cfg.Jobs.TotalsAuditInterval, s.AuditTotals)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	var mwOpts []api.MiddlewareOption

	if cfg.HTTP.JWTPublicKeyPath != "" {
		publicKey, err := security.ParsePublicKeyFromFile(cfg.HTTP.JWTPublicKeyPath)
		panicOnErr("load jwt public key", err)

		mwOpts = append(mwOpts, api.WithJWTPublicKey(publicKey))
	}

	mw := api.NewMiddleware(cfg.HTTP.JWTSecret, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, mwOpts...)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
