package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/skyrim-alchemy/internal/server"
	"github.com/osse101/skyrim-alchemy/internal/stats"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Stats  stats.Service
}

// GracefulShutdown stops the HTTP server first so no request observes a
// purged cache, then drops memoized statistics.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Stats != nil {
		components.Stats.Purge(ctx)
		slog.Info(LogMsgCachesPurged)
	}

	slog.Info(LogMsgServerStopped)
}
