package handler

import (
	"net/http"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// SetGoalRequest is the body of the goal PUT endpoints
type SetGoalRequest struct {
	TargetLevel int `json:"target_level" validate:"min=1"`
}

// HandleSetHeroGoal sets a hero's target level
// @Summary Set a hero goal
// @Tags goals
// @Accept json
// @Produce json
// @Param heroKey path string true "Hero key"
// @Param request body SetGoalRequest true "Goal"
// @Success 200 {object} domain.GoalSummary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey}/goal [put]
func (h *TrackerHandler) HandleSetHeroGoal(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}
	h.setGoal(w, r, heroKey)
}

// HandleClearHeroGoal removes a hero's goal
// @Summary Clear a hero goal
// @Tags goals
// @Produce json
// @Param heroKey path string true "Hero key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey}/goal [delete]
func (h *TrackerHandler) HandleClearHeroGoal(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}
	h.clearGoal(w, r, heroKey)
}

// HandleSetGlobalGoal sets the target level for the sum over all heroes
// @Summary Set the global goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body SetGoalRequest true "Goal"
// @Success 200 {object} domain.GoalSummary
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/goal [put]
func (h *TrackerHandler) HandleSetGlobalGoal(w http.ResponseWriter, r *http.Request) {
	h.setGoal(w, r, domain.GlobalScope)
}

// HandleClearGlobalGoal removes the global goal
// @Summary Clear the global goal
// @Tags goals
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/goal [delete]
func (h *TrackerHandler) HandleClearGlobalGoal(w http.ResponseWriter, r *http.Request) {
	h.clearGoal(w, r, domain.GlobalScope)
}

func (h *TrackerHandler) setGoal(w http.ResponseWriter, r *http.Request, scope string) {
	var req SetGoalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set goal"); err != nil {
		return
	}

	summary, err := h.service.SetGoal(r.Context(), scope, req.TargetLevel)
	if err != nil {
		respondServiceError(w, r, "Failed to set goal", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *TrackerHandler) clearGoal(w http.ResponseWriter, r *http.Request, scope string) {
	if err := h.service.ClearGoal(r.Context(), scope); err != nil {
		respondServiceError(w, r, "Failed to clear goal", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGoalCleared})
}
