package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Tracker event types
const (
	BadgeUpdated        Type = "badge.updated"
	BadgeRemoved        Type = "badge.removed"
	HeroLeveledUp       Type = "hero.leveled_up"
	GlobalLeveledUp     Type = "global.leveled_up"
	AchievementUnlocked Type = "achievement.unlocked"
	GoalReached         Type = "goal.reached"
)

// BadgeUpdatedPayloadV1 is the typed payload for badge updates
type BadgeUpdatedPayloadV1 struct {
	HeroKey   string `json:"hero_key"`
	BadgeKey  string `json:"badge_key"`
	Category  string `json:"category"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	XPDelta   int64  `json:"xp_delta"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for hero and global level-ups.
// Scope is a hero key or "global".
type LevelUpPayloadV1 struct {
	Scope    string `json:"scope"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	TotalXP  int64  `json:"total_xp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlocks
type AchievementUnlockedPayloadV1 struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// GoalReachedPayloadV1 is the typed payload for reached goals
type GoalReachedPayloadV1 struct {
	Scope       string `json:"scope"`
	TargetLevel int    `json:"target_level"`
}

// NewBadgeUpdatedEvent creates a badge updated event
func NewBadgeUpdatedEvent(heroKey, badgeKey, category string, oldLevel, newLevel int, xpDelta int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeUpdated,
		Payload: BadgeUpdatedPayloadV1{
			HeroKey:   heroKey,
			BadgeKey:  badgeKey,
			Category:  category,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			XPDelta:   xpDelta,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBadgeRemovedEvent creates a badge removed event
func NewBadgeRemovedEvent(heroKey, badgeKey, category string, oldLevel int, xpDelta int64) Event {
	evt := NewBadgeUpdatedEvent(heroKey, badgeKey, category, oldLevel, 0, xpDelta)
	evt.Type = BadgeRemoved
	return evt
}

// NewLevelUpEvent creates a hero level-up event, or a global one for the global scope
func NewLevelUpEvent(scope string, oldLevel, newLevel int, totalXP int64) Event {
	t := HeroLeveledUp
	if scope == domain.GlobalScope {
		t = GlobalLeveledUp
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: LevelUpPayloadV1{
			Scope:    scope,
			OldLevel: oldLevel,
			NewLevel: newLevel,
			TotalXP:  totalXP,
		},
	}
}

// NewAchievementUnlockedEvent creates an achievement unlocked event
func NewAchievementUnlockedEvent(key, name, kind string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: AchievementUnlockedPayloadV1{Key: key, Name: name, Kind: kind},
	}
}

// NewGoalReachedEvent creates a goal reached event
func NewGoalReachedEvent(scope string, targetLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GoalReached,
		Payload: GoalReachedPayloadV1{Scope: scope, TargetLevel: targetLevel},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
