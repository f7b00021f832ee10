package handler

import (
	"net/http"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/tracker"
)

// TrackerHandler serves the hero, badge, goal and summary endpoints
type TrackerHandler struct {
	service tracker.Service
}

func NewTrackerHandler(service tracker.Service) *TrackerHandler {
	return &TrackerHandler{service: service}
}

// UpsertHeroRequest is the body of PUT /heroes/{heroKey}
type UpsertHeroRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=tank damage support"`
}

// HeroListResponse wraps the hero list
type HeroListResponse struct {
	Heroes []domain.Hero `json:"heroes"`
}

// HandleListHeroes returns every tracked hero
// @Summary List heroes
// @Tags heroes
// @Produce json
// @Success 200 {object} HeroListResponse
// @Router /api/v1/heroes [get]
func (h *TrackerHandler) HandleListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.service.ListHeroes(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to list heroes", err)
		return
	}
	respondJSON(w, http.StatusOK, HeroListResponse{Heroes: heroes})
}

// HandleGetHero returns a hero's summary
// @Summary Hero summary
// @Tags heroes
// @Produce json
// @Param heroKey path string true "Hero key"
// @Success 200 {object} domain.HeroSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey} [get]
func (h *TrackerHandler) HandleGetHero(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetHeroSummary(r.Context(), heroKey)
	if err != nil {
		respondServiceError(w, r, "Failed to get hero summary", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleUpsertHero creates or updates a hero
// @Summary Create or update a hero
// @Tags heroes
// @Accept json
// @Produce json
// @Param heroKey path string true "Hero key"
// @Param request body UpsertHeroRequest true "Hero"
// @Success 200 {object} domain.Hero
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/heroes/{heroKey} [put]
func (h *TrackerHandler) HandleUpsertHero(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}

	var req UpsertHeroRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert hero"); err != nil {
		return
	}

	hero, err := h.service.UpsertHero(r.Context(), domain.Hero{
		Key:         heroKey,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		respondServiceError(w, r, "Failed to save hero", err)
		return
	}
	respondJSON(w, http.StatusOK, hero)
}

// HandleDeleteHero removes a hero with its badges and goal
// @Summary Delete a hero
// @Tags heroes
// @Produce json
// @Param heroKey path string true "Hero key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey} [delete]
func (h *TrackerHandler) HandleDeleteHero(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteHero(r.Context(), heroKey); err != nil {
		respondServiceError(w, r, "Failed to delete hero", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHeroDeleted})
}
