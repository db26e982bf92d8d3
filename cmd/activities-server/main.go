// cmd/activities-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mergington-activities/internal/api"
	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/registry"
)

func main() {
	zapLog := logger.New("info", "console")
	zapLog.Info("Starting activities server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	tracing := observability.NewTracing(cfg.App.Name, cfg.Tracing.CollectorURL, cfg.Tracing.Enabled)
	defer tracing.Shutdown()

	// --- Seed the registry ---
	reg, err := registry.Load(cfg.Registry.SeedPath, log)
	if err != nil {
		zapLog.Fatal("registry seed failed", zap.Error(err))
	}
	zapLog.Info("Activity registry seeded successfully",
		zap.Int("activities", len(reg.Names())),
		zap.String("seedPath", cfg.Registry.SeedPath),
	)

	// --- Start HTTP server ---
	srv := api.NewServer(cfg.Server, reg, log, obs, tracing)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Wait for shutdown signal ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Activities server stopped")
}
