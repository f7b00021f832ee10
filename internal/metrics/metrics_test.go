package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroTracker_Go/internal/event"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/heroes/{heroKey}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/heroes/{heroKey}", "418"))

	for _, hero := range []string{"ana", "mercy"} {
		req := httptest.NewRequest(http.MethodGet, "/heroes/"+hero, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/heroes/{heroKey}", "418"))
	assert.Equal(t, before+2, after)
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	updates := testutil.ToFloat64(BadgeUpdates.WithLabelValues("wins"))
	gained := testutil.ToFloat64(BadgeXPGained.WithLabelValues("wins"))
	globalUps := testutil.ToFloat64(LevelUps.WithLabelValues(ScopeGlobal))
	heroUps := testutil.ToFloat64(LevelUps.WithLabelValues(ScopeHero))
	unlocked := testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("total_xp"))
	goals := testutil.ToFloat64(GoalsReached.WithLabelValues(ScopeGlobal))

	require.NoError(t, bus.Publish(ctx, event.NewBadgeUpdatedEvent("ana", "wins", "wins", 2, 5, 1200)))
	require.NoError(t, bus.Publish(ctx, event.NewBadgeRemovedEvent("ana", "wins", "wins", 5, -1600)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent("global", 1, 2, 2000)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent("ana", 1, 2, 2000)))
	require.NoError(t, bus.Publish(ctx, event.NewAchievementUnlockedEvent("xp_10k", "Ten Thousand", "total_xp")))
	require.NoError(t, bus.Publish(ctx, event.NewGoalReachedEvent("global", 2)))

	assert.Equal(t, updates+2, testutil.ToFloat64(BadgeUpdates.WithLabelValues("wins")))
	assert.Equal(t, gained+1200, testutil.ToFloat64(BadgeXPGained.WithLabelValues("wins")), "removals never subtract")
	assert.Equal(t, globalUps+1, testutil.ToFloat64(LevelUps.WithLabelValues(ScopeGlobal)))
	assert.Equal(t, heroUps+1, testutil.ToFloat64(LevelUps.WithLabelValues(ScopeHero)))
	assert.Equal(t, unlocked+1, testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("total_xp")))
	assert.Equal(t, goals+1, testutil.ToFloat64(GoalsReached.WithLabelValues(ScopeGlobal)))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.AchievementUnlocked, Payload: "nope"})
	assert.NoError(t, err)
}
