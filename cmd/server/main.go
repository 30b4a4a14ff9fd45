package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/planet-catalog/internal/adapter/http"
	"github.com/couchcryptid/planet-catalog/internal/adapter/swapi"
	"github.com/couchcryptid/planet-catalog/internal/config"
	"github.com/couchcryptid/planet-catalog/internal/observability"
	"github.com/couchcryptid/planet-catalog/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := swapi.NewClient(cfg.CatalogURL, cfg.CatalogTimeout, metrics, logger)
	shaper := pipeline.NewShaper(cfg.CollationLocale, cfg.MalformedRows == config.MalformedFail, logger, metrics)
	controller := pipeline.New(client, shaper, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, controller, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Fetch the catalog once; the page shows the loading state until it resolves.
	// A failure is logged by the controller and rendered from its state.
	go func() {
		_ = controller.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
