package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// UpsertBadgeRequest is the body of PUT /heroes/{heroKey}/badges/{badgeKey}.
// XPPerLevel is only read for the custom category.
type UpsertBadgeRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
	Category    string `json:"category" validate:"required,category"`
	Level       int    `json:"level" validate:"min=1"`
	XPPerLevel  int64  `json:"xp_per_level,omitempty" validate:"required_if=Category custom,min=0"`
}

// SetBadgeLevelRequest is the body of PATCH /heroes/{heroKey}/badges/{badgeKey}
type SetBadgeLevelRequest struct {
	Level int `json:"level" validate:"min=1"`
}

func badgeKeyParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "badgeKey")
	if err := GetValidator().ValidateVar(key, "required,key"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBadgeKey)
		return "", false
	}
	return key, true
}

// HandleUpsertBadge creates or replaces a badge
// @Summary Create or replace a badge
// @Tags badges
// @Accept json
// @Produce json
// @Param heroKey path string true "Hero key"
// @Param badgeKey path string true "Badge key"
// @Param request body UpsertBadgeRequest true "Badge"
// @Success 200 {object} domain.BadgeUpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey}/badges/{badgeKey} [put]
func (h *TrackerHandler) HandleUpsertBadge(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}
	badgeKey, ok := badgeKeyParam(w, r)
	if !ok {
		return
	}

	var req UpsertBadgeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert badge"); err != nil {
		return
	}

	result, err := h.service.UpsertBadge(r.Context(), domain.Badge{
		HeroKey:     heroKey,
		BadgeKey:    badgeKey,
		DisplayName: req.DisplayName,
		Category:    domain.BadgeCategory(req.Category),
		Level:       req.Level,
		XPPerLevel:  req.XPPerLevel,
	})
	if err != nil {
		respondServiceError(w, r, "Failed to save badge", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleSetBadgeLevel changes the level of an existing badge
// @Summary Set a badge level
// @Tags badges
// @Accept json
// @Produce json
// @Param heroKey path string true "Hero key"
// @Param badgeKey path string true "Badge key"
// @Param request body SetBadgeLevelRequest true "Level"
// @Success 200 {object} domain.BadgeUpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey}/badges/{badgeKey} [patch]
func (h *TrackerHandler) HandleSetBadgeLevel(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}
	badgeKey, ok := badgeKeyParam(w, r)
	if !ok {
		return
	}

	var req SetBadgeLevelRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set badge level"); err != nil {
		return
	}

	result, err := h.service.SetBadgeLevel(r.Context(), heroKey, badgeKey, req.Level)
	if err != nil {
		respondServiceError(w, r, "Failed to set badge level", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleRemoveBadge deletes a badge
// @Summary Remove a badge
// @Tags badges
// @Produce json
// @Param heroKey path string true "Hero key"
// @Param badgeKey path string true "Badge key"
// @Success 200 {object} domain.BadgeUpdateResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{heroKey}/badges/{badgeKey} [delete]
func (h *TrackerHandler) HandleRemoveBadge(w http.ResponseWriter, r *http.Request) {
	heroKey, ok := heroKeyParam(w, r)
	if !ok {
		return
	}
	badgeKey, ok := badgeKeyParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.RemoveBadge(r.Context(), heroKey, badgeKey)
	if err != nil {
		respondServiceError(w, r, "Failed to remove badge", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
