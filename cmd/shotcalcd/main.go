// Command shotcalcd serves trajectory calculations over HTTP.
// It is configured with SHOTCALC_* environment variables.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gehtsoft-usa/go_shotcalc/internal/api"
	"github.com/gehtsoft-usa/go_shotcalc/internal/config"
	"github.com/gehtsoft-usa/go_shotcalc/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := config.NewLogger(os.Stdout, config.LogLevel())
	cfg := config.Load(logger)

	deps := api.Deps{HistoryLimit: cfg.HistoryLimit}
	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open run history", "path", cfg.DBPath, "error", err)
			return 1
		}
		defer store.Close()
		deps.Store = store
		logger.Info("run history enabled", "path", cfg.DBPath)
	} else {
		logger.Info("run history disabled, SHOTCALC_DB_PATH is not set")
	}

	srv := api.NewServer(cfg.HTTPAddr, logger, deps)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "history_enabled", deps.Store != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		logger.Error("server listen error", "error", err)
		return 1
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return 1
	}

	logger.Info("server stopped")
	return 0
}
