package bootstrap

import (
	"log/slog"

	"github.com/osse101/HeroTracker_Go/internal/event"
	"github.com/osse101/HeroTracker_Go/internal/metrics"
	"github.com/osse101/HeroTracker_Go/internal/sse"
)

// InitializeEventSystem creates the in-process event bus, subscribes the
// metrics collector, and starts the SSE hub that streams tracker events.
// The hub is stopped by the HTTP server on shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	eventBus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, eventBus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus, hub
}
