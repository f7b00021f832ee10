package metrics

import (
	"context"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/event"
	"github.com/osse101/HeroTracker_Go/internal/logger"
)

// EventMetricsCollector subscribes to tracker events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all tracker events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.BadgeUpdated,
		event.BadgeRemoved,
		event.HeroLeveledUp,
		event.GlobalLeveledUp,
		event.AchievementUnlocked,
		event.GoalReached,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BadgeUpdated, event.BadgeRemoved:
		p, err := event.DecodePayload[event.BadgeUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		BadgeUpdates.WithLabelValues(p.Category).Inc()
		if p.XPDelta > 0 {
			BadgeXPGained.WithLabelValues(p.Category).Add(float64(p.XPDelta))
		}

	case event.HeroLeveledUp, event.GlobalLeveledUp:
		scope := ScopeHero
		if evt.Type == event.GlobalLeveledUp {
			scope = ScopeGlobal
		}
		LevelUps.WithLabelValues(scope).Inc()

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		AchievementsUnlocked.WithLabelValues(p.Kind).Inc()

	case event.GoalReached:
		p, err := event.DecodePayload[event.GoalReachedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		scope := ScopeHero
		if p.Scope == domain.GlobalScope {
			scope = ScopeGlobal
		}
		GoalsReached.WithLabelValues(scope).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
