package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/freedaiy/intake/internal/adapters/storage"
	appservices "github.com/freedaiy/intake/internal/app/services"
	"github.com/freedaiy/intake/internal/config"
	"github.com/freedaiy/intake/internal/db"
	"github.com/freedaiy/intake/internal/observability"
	"github.com/freedaiy/intake/internal/server"
	"github.com/freedaiy/intake/internal/server/routes"
)

const shutdownTimeout = 10 * time.Second

type latencyReporter interface {
	QueryLatencyStats() []db.LatencyStats
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := observability.NewLogger(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:          cfg.Observability.Enabled,
		OTLPEndpoint:     cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders: cfg.Observability.OTLPTraceHeaders,
		ServiceName:      cfg.Observability.ServiceName,
		ServiceVer:       cfg.Observability.ServiceVer,
		SamplingRatio:    cfg.Observability.SamplingRatio,
	})
	if err != nil {
		log.Warn("OpenTelemetry disabled", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	metrics := observability.NewMetrics(nil)

	resolution := storage.Resolve(ctx, cfg.Store, storage.Options{
		Timeout: cfg.Store.StoreTimeout(),
		Metrics: metrics,
		Logger:  log,
	})
	defer func() {
		logQueryLatency(log, resolution.Store)
		if err := resolution.Store.Close(); err != nil {
			log.Error("Failed to close document store", "error", err)
		}
	}()

	presence := cfg.StorePresence()
	intake := appservices.NewIntakeService(resolution.Store, appservices.NewSubmissionValidator(), metrics, log)
	diagnostics := appservices.NewDiagnosticsService(resolution, func() appservices.ConfigPresence {
		return appservices.ConfigPresence{
			DatabaseURL:  presence.DatabaseURL,
			DatabaseName: presence.DatabaseName,
		}
	})

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewStatusRoutes(diagnostics))
	srv.RegisterRouter(routes.NewIntakeRoutes(intake))
	srv.RegisterRouter(routes.NewCatalogRoutes(appservices.NewCatalogService()))
	if cfg.Server.MetricsEnabled {
		srv.RegisterRouter(routes.NewMetricsRoutes(metrics.Handler()))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port, "store", resolution.Backend, "live", resolution.Live)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server stopped", "error", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces", "error", err)
	}
}

func logQueryLatency(log *slog.Logger, store any) {
	wrapped, ok := store.(*storage.Store)
	if !ok {
		return
	}
	reporter, ok := wrapped.Backend().(latencyReporter)
	if !ok {
		return
	}
	for _, stat := range reporter.QueryLatencyStats() {
		log.Info("Query latency",
			"query", stat.Name,
			"count", stat.Count,
			"p50", stat.P50,
			"p95", stat.P95,
			"max", stat.Max,
		)
	}
}
