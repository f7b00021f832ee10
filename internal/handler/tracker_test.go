package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

func newTrackerRouter(svc *MockTrackerService) http.Handler {
	h := NewTrackerHandler(svc)
	r := chi.NewRouter()
	r.Get("/heroes", h.HandleListHeroes)
	r.Route("/heroes/{heroKey}", func(r chi.Router) {
		r.Get("/", h.HandleGetHero)
		r.Put("/", h.HandleUpsertHero)
		r.Delete("/", h.HandleDeleteHero)
		r.Put("/badges/{badgeKey}", h.HandleUpsertBadge)
		r.Patch("/badges/{badgeKey}", h.HandleSetBadgeLevel)
		r.Delete("/badges/{badgeKey}", h.HandleRemoveBadge)
		r.Put("/goal", h.HandleSetHeroGoal)
		r.Delete("/goal", h.HandleClearHeroGoal)
	})
	r.Put("/goal", h.HandleSetGlobalGoal)
	r.Delete("/goal", h.HandleClearGlobalGoal)
	r.Get("/summary", h.HandleGetSummary)
	r.Get("/achievements", h.HandleGetAchievements)
	return r
}

func serve(t *testing.T, svc *MockTrackerService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	newTrackerRouter(svc).ServeHTTP(w, req)
	return w
}

func TestHandleListHeroes(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("ListHeroes", mock.Anything).Return([]domain.Hero{{Key: "rein", DisplayName: "Reinhardt"}}, nil)

	w := serve(t, svc, http.MethodGet, "/heroes", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"rein"`)
}

func TestHandleGetHero(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockTrackerService)
		svc.On("GetHeroSummary", mock.Anything, "rein").Return(&domain.HeroSummary{
			Hero:    domain.Hero{Key: "rein"},
			TotalXP: 2000,
		}, nil)

		w := serve(t, svc, http.MethodGet, "/heroes/rein", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_xp":2000`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockTrackerService)
		svc.On("GetHeroSummary", mock.Anything, "ghost").Return(nil, domain.ErrHeroNotFound)

		w := serve(t, svc, http.MethodGet, "/heroes/ghost", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgHeroNotFoundError)
	})

	t.Run("reserved key", func(t *testing.T) {
		svc := new(MockTrackerService)
		w := serve(t, svc, http.MethodGet, "/heroes/global", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetHeroSummary", mock.Anything, mock.Anything)
	})
}

func TestHandleUpsertHero(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("UpsertHero", mock.Anything, domain.Hero{Key: "rein", DisplayName: "Reinhardt", Role: "tank"}).
		Return(&domain.Hero{Key: "rein", DisplayName: "Reinhardt", Role: "tank"}, nil)

	w := serve(t, svc, http.MethodPut, "/heroes/rein", `{"display_name":"Reinhardt","role":"tank"}`)
	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	t.Run("bad role", func(t *testing.T) {
		w := serve(t, svc, http.MethodPut, "/heroes/rein", `{"role":"healer"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"role"`)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := serve(t, svc, http.MethodPut, "/heroes/rein", `{"nickname":"Rein"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteHero(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("DeleteHero", mock.Anything, "rein").Return(nil)
	svc.On("DeleteHero", mock.Anything, "ghost").Return(domain.ErrHeroNotFound)

	assert.Equal(t, http.StatusOK, serve(t, svc, http.MethodDelete, "/heroes/rein", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, svc, http.MethodDelete, "/heroes/ghost", "").Code)
}

func TestHandleUpsertBadge(t *testing.T) {
	svc := new(MockTrackerService)
	want := domain.Badge{
		HeroKey:    "rein",
		BadgeKey:   "eliminations",
		Category:   domain.CategoryHeroSpecific,
		Level:      11,
		XPPerLevel: 0,
	}
	svc.On("UpsertBadge", mock.Anything, want).Return(&domain.BadgeUpdateResult{
		Badge:   want,
		XPDelta: 2000,
		Hero:    domain.LevelChange{LeveledUp: true},
	}, nil)

	w := serve(t, svc, http.MethodPut, "/heroes/rein/badges/eliminations", `{"category":"hero_specific","level":11}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.BadgeUpdateResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, int64(2000), result.XPDelta)
	assert.True(t, result.Hero.LeveledUp)

	t.Run("custom without xp per level", func(t *testing.T) {
		w := serve(t, svc, http.MethodPut, "/heroes/rein/badges/x", `{"category":"custom","level":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service validation error", func(t *testing.T) {
		svc.On("UpsertBadge", mock.Anything, mock.MatchedBy(func(b domain.Badge) bool { return b.BadgeKey == "ghost" })).
			Return(nil, domain.ErrHeroNotFound)
		w := serve(t, svc, http.MethodPut, "/heroes/rein/badges/ghost", `{"category":"wins","level":2}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleSetBadgeLevel(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("SetBadgeLevel", mock.Anything, "rein", "wins", 5).Return(&domain.BadgeUpdateResult{OldLevel: 4}, nil)
	svc.On("SetBadgeLevel", mock.Anything, "rein", "nope", 5).Return(nil, domain.ErrBadgeNotFound)

	w := serve(t, svc, http.MethodPatch, "/heroes/rein/badges/wins", `{"level":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"old_level":4`)

	assert.Equal(t, http.StatusNotFound, serve(t, svc, http.MethodPatch, "/heroes/rein/badges/nope", `{"level":5}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, svc, http.MethodPatch, "/heroes/rein/badges/wins", `{"level":0}`).Code)
}

func TestHandleRemoveBadge(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("RemoveBadge", mock.Anything, "rein", "wins").Return(&domain.BadgeUpdateResult{XPDelta: -400}, nil)

	w := serve(t, svc, http.MethodDelete, "/heroes/rein/badges/wins", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"xp_delta":-400`)
}

func TestHandleGoals(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("SetGoal", mock.Anything, "rein", 10).Return(&domain.GoalSummary{Goal: domain.Goal{Scope: "rein", TargetLevel: 10}}, nil)
	svc.On("SetGoal", mock.Anything, domain.GlobalScope, 30).Return(&domain.GoalSummary{Goal: domain.Goal{Scope: domain.GlobalScope, TargetLevel: 30}}, nil)
	svc.On("ClearGoal", mock.Anything, "rein").Return(domain.ErrGoalNotSet)
	svc.On("ClearGoal", mock.Anything, domain.GlobalScope).Return(nil)

	w := serve(t, svc, http.MethodPut, "/heroes/rein/goal", `{"target_level":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scope":"rein"`)

	w = serve(t, svc, http.MethodPut, "/goal", `{"target_level":30}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scope":"global"`)

	assert.Equal(t, http.StatusBadRequest, serve(t, svc, http.MethodPut, "/goal", `{"target_level":0}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, svc, http.MethodDelete, "/heroes/rein/goal", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, svc, http.MethodDelete, "/goal", "").Code)
}

func TestHandleGetSummary(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("GetGlobalSummary", mock.Anything).Return(&domain.GlobalSummary{TotalXP: 123, MaxLevel: 100}, nil)

	w := serve(t, svc, http.MethodGet, "/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_level":100`)
}

func TestHandleGetSummary_InternalErrorIsGeneric(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("GetGlobalSummary", mock.Anything).Return(nil, errors.New("pq: relation badges does not exist"))

	w := serve(t, svc, http.MethodGet, "/summary", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestHandleGetAchievements(t *testing.T) {
	svc := new(MockTrackerService)
	svc.On("GetAchievements", mock.Anything).Return([]domain.AchievementStatus{
		{Achievement: domain.Achievement{Key: "a"}, Unlocked: true},
		{Achievement: domain.Achievement{Key: "b"}},
	}, nil)

	w := serve(t, svc, http.MethodGet, "/achievements", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AchievementsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Unlocked)
	assert.Equal(t, 2, resp.Total)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{domain.ErrHeroNotFound, http.StatusNotFound, ErrMsgHeroNotFoundError},
		{domain.ErrBadgeNotFound, http.StatusNotFound, ErrMsgBadgeNotFoundError},
		{domain.ErrGoalNotSet, http.StatusNotFound, ErrMsgGoalNotSetError},
		{domain.ErrInvalidLevel, http.StatusBadRequest, ErrMsgInvalidLevelError},
		{domain.ErrInvalidCategory, http.StatusBadRequest, ErrMsgInvalidCategoryError},
		{domain.ErrInvalidXPPerLevel, http.StatusBadRequest, ErrMsgInvalidXPPerLevelError},
		{domain.ErrInvalidGoalLevel, http.StatusBadRequest, ErrMsgInvalidGoalLevelError},
		{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.Equal(t, tt.wantMsg, msg, "%v", tt.err)
	}

	wrapped := errors.Join(errors.New("context"), domain.ErrInvalidInput)
	status, _ := mapServiceErrorToUserMessage(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
}
