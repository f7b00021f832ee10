package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that stops accepting work when asked.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource without reporting an error, like pgxpool.Pool.
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	DBPool Closer
}

// GracefulShutdown stops the HTTP server (which also shuts the tracker
// service down) and then closes the database pool.
// Errors are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
