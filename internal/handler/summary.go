package handler

import (
	"net/http"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// AchievementsResponse wraps the achievement list
type AchievementsResponse struct {
	Achievements []domain.AchievementStatus `json:"achievements"`
	Unlocked     int                        `json:"unlocked"`
	Total        int                        `json:"total"`
}

// HandleGetSummary returns the global summary
// @Summary Global summary
// @Tags summary
// @Produce json
// @Success 200 {object} domain.GlobalSummary
// @Router /api/v1/summary [get]
func (h *TrackerHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetGlobalSummary(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to get summary", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleGetAchievements returns every achievement with its unlock state
// @Summary Achievements
// @Tags summary
// @Produce json
// @Success 200 {object} AchievementsResponse
// @Router /api/v1/achievements [get]
func (h *TrackerHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.GetAchievements(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to get achievements", err)
		return
	}

	unlocked := 0
	for _, s := range statuses {
		if s.Unlocked {
			unlocked++
		}
	}
	respondJSON(w, http.StatusOK, AchievementsResponse{
		Achievements: statuses,
		Unlocked:     unlocked,
		Total:        len(statuses),
	})
}
