package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/HeroTracker_Go/internal/event"
)

// StreamedEventTypes are the bus events forwarded to stream clients
var StreamedEventTypes = []event.Type{
	event.BadgeUpdated,
	event.BadgeRemoved,
	event.HeroLeveledUp,
	event.GlobalLeveledUp,
	event.AchievementUnlocked,
	event.GoalReached,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedEventTypes))
	for _, t := range StreamedEventTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

// forward rebroadcasts the typed bus payload unchanged
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "clients", s.hub.ClientCount())
	return nil
}
