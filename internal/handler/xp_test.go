package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

func newXPHandler() *XPHandler {
	return NewXPHandler(leveling.StandardTable())
}

func TestHandleGetCurve(t *testing.T) {
	w := httptest.NewRecorder()
	newXPHandler().HandleGetCurve(w, httptest.NewRequest(http.MethodGet, "/api/v1/xp/curve", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp CurveResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Tiers, 25)
	assert.Equal(t, int64(838000), resp.TableEnd)
	assert.Equal(t, int64(60000), resp.TailCostPerLevel)
}

func TestHandleGetLevel(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLevel  int
	}{
		{"start of level 2", "?total_xp=2000", http.StatusOK, 2},
		{"tail", "?total_xp=900000", http.StatusOK, 27},
		{"negative clamps", "?total_xp=-5", http.StatusOK, 1},
		{"missing", "", http.StatusBadRequest, 0},
		{"not a number", "?total_xp=lots", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newXPHandler().HandleGetLevel(w, httptest.NewRequest(http.MethodGet, "/api/v1/xp/level"+tt.query, nil))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var details leveling.LevelDetails
			require.NoError(t, json.NewDecoder(w.Body).Decode(&details))
			assert.Equal(t, tt.wantLevel, details.Level)
		})
	}
}

func TestHandleGetRequired(t *testing.T) {
	w := httptest.NewRecorder()
	newXPHandler().HandleGetRequired(w, httptest.NewRequest(http.MethodGet, "/api/v1/xp/required?level=27", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp RequiredXPResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, RequiredXPResponse{Level: 27, RequiredXP: 898000}, resp)
}

func TestHandlePostTotal(t *testing.T) {
	t.Run("fixed categories ignore xp per level", func(t *testing.T) {
		body := `{"badges":[
			{"category":"hero_specific","level":11,"xp_per_level":99999},
			{"category":"wins","level":2},
			{"category":"custom","level":3,"xp_per_level":50}
		]}`
		w := httptest.NewRecorder()
		newXPHandler().HandlePostTotal(w, httptest.NewRequest(http.MethodPost, "/api/v1/xp/total", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)
		var resp TotalXPResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(2000+400+100), resp.TotalXP)
		assert.Equal(t, 2, resp.Level.Level)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		newXPHandler().HandlePostTotal(w, httptest.NewRequest(http.MethodPost, "/api/v1/xp/total",
			strings.NewReader(`{"badges":[{"category":"kills","level":3}]}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"category"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		newXPHandler().HandlePostTotal(w, httptest.NewRequest(http.MethodPost, "/api/v1/xp/total", strings.NewReader(`{`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		newXPHandler().HandlePostTotal(w, httptest.NewRequest(http.MethodPost, "/api/v1/xp/total", strings.NewReader(`{"badges":[]}`)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_xp":0`)
	})
}

func TestHandleGetGoal(t *testing.T) {
	w := httptest.NewRecorder()
	newXPHandler().HandleGetGoal(w, httptest.NewRequest(http.MethodGet, "/api/v1/xp/goal?total_xp=2000&level=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var p leveling.GoalProjection
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, int64(4000), p.XPToGoal)
	assert.Equal(t, int64(20), p.BadgesNeeded["hero_specific"])
	assert.Equal(t, int64(10), p.BadgesNeeded["wins"])
	require.NotNil(t, p.TimeRemaining)

	t.Run("rejects level below one", func(t *testing.T) {
		w := httptest.NewRecorder()
		newXPHandler().HandleGetGoal(w, httptest.NewRequest(http.MethodGet, "/api/v1/xp/goal?total_xp=0&level=0", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
