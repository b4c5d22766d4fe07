package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/skyrim-alchemy/internal/bootstrap"
	"github.com/osse101/skyrim-alchemy/internal/config"
	"github.com/osse101/skyrim-alchemy/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title Skyrim Alchemy API
// @version 1.0
// @description Read-only alchemy engine: ingredients, effects, potion brewing and ranking.
// @BasePath /
func main() {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("%s: %v", bootstrap.ErrMsgFailedValidateConfig, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s: %v", bootstrap.ErrMsgFailedLoadConfig, err)
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := bootstrap.InitializeServices(ctx, cfg, "")
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		RateLimit:      cfg.RateLimit,
		TrustedProxies: cfg.TrustedProxies,
		DatasetVersion: services.Store.Info().Version,
	}, services.Report)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Stats:  services.Stats,
	})
}
