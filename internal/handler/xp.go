package handler

import (
	"net/http"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// XPHandler exposes the leveling engine without touching stored data
type XPHandler struct {
	table *leveling.Table
}

func NewXPHandler(table *leveling.Table) *XPHandler {
	return &XPHandler{table: table}
}

// CurveResponse describes the active progression table
type CurveResponse struct {
	Tiers            []leveling.Tier `json:"tiers"`
	LastLevel        int             `json:"last_level"`
	TableEnd         int64           `json:"table_end"`
	TailCostPerLevel int64           `json:"tail_cost_per_level"`
}

// RequiredXPResponse is the cumulative XP at the start of a level
type RequiredXPResponse struct {
	Level      int   `json:"level"`
	RequiredXP int64 `json:"required_xp"`
}

// ContributionRequest is one badge in a total XP calculation
type ContributionRequest struct {
	Category   string `json:"category" validate:"required,category"`
	Level      int    `json:"level" validate:"min=0"`
	XPPerLevel int64  `json:"xp_per_level,omitempty" validate:"min=0"`
}

// TotalXPRequest asks for the total XP and level of a set of badges
type TotalXPRequest struct {
	Badges []ContributionRequest `json:"badges" validate:"dive"`
}

// TotalXPResponse is the aggregate of a TotalXPRequest
type TotalXPResponse struct {
	TotalXP int64                 `json:"total_xp"`
	Level   leveling.LevelDetails `json:"level"`
}

// HandleGetCurve returns the progression table
// @Summary Progression table
// @Tags xp
// @Produce json
// @Success 200 {object} CurveResponse
// @Router /api/v1/xp/curve [get]
func (h *XPHandler) HandleGetCurve(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CurveResponse{
		Tiers:            h.table.Tiers(),
		LastLevel:        h.table.LastLevel(),
		TableEnd:         h.table.TableEnd(),
		TailCostPerLevel: h.table.TailCostPerLevel(),
	})
}

// HandleGetLevel resolves a total XP value to level details
// @Summary Level for a total XP
// @Tags xp
// @Produce json
// @Param total_xp query int true "Total XP"
// @Success 200 {object} leveling.LevelDetails
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/xp/level [get]
func (h *XPHandler) HandleGetLevel(w http.ResponseWriter, r *http.Request) {
	totalXP, ok := GetQueryInt64(r, w, "total_xp")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.table.LevelDetails(totalXP))
}

// HandleGetRequired returns the XP needed to reach a level from zero
// @Summary XP required for a level
// @Tags xp
// @Produce json
// @Param level query int true "Target level"
// @Success 200 {object} RequiredXPResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/xp/required [get]
func (h *XPHandler) HandleGetRequired(w http.ResponseWriter, r *http.Request) {
	level, ok := GetQueryInt(r, w, "level")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, RequiredXPResponse{
		Level:      level,
		RequiredXP: h.table.XPRequiredForLevel(level),
	})
}

// HandlePostTotal aggregates badge levels into total XP.
// Fixed categories ignore xp_per_level.
// @Summary Total XP for a set of badges
// @Tags xp
// @Accept json
// @Produce json
// @Param request body TotalXPRequest true "Badges"
// @Success 200 {object} TotalXPResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/xp/total [post]
func (h *XPHandler) HandlePostTotal(w http.ResponseWriter, r *http.Request) {
	var req TotalXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Total XP"); err != nil {
		return
	}

	contributions := make([]leveling.Contribution, 0, len(req.Badges))
	for _, b := range req.Badges {
		xpPerLevel := b.XPPerLevel
		if fixed, ok := domain.BadgeCategory(b.Category).FixedXPPerLevel(); ok {
			xpPerLevel = fixed
		}
		contributions = append(contributions, leveling.Contribution{Level: b.Level, XPPerLevel: xpPerLevel})
	}

	total := leveling.ComputeTotalXP(contributions)
	respondJSON(w, http.StatusOK, TotalXPResponse{
		TotalXP: total,
		Level:   h.table.LevelDetails(total),
	})
}

// HandleGetGoal projects the distance from a total XP to a target level
// @Summary Goal projection
// @Tags xp
// @Produce json
// @Param total_xp query int true "Current total XP"
// @Param level query int true "Target level"
// @Success 200 {object} leveling.GoalProjection
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/xp/goal [get]
func (h *XPHandler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	totalXP, ok := GetQueryInt64(r, w, "total_xp")
	if !ok {
		return
	}
	level, ok := GetQueryInt(r, w, "level")
	if !ok {
		return
	}
	if level < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidGoalLevelError)
		return
	}

	projection := h.table.ProjectGoal(totalXP, level, domain.CategoryXPPerLevel())
	estimate := h.table.EstimateTimeToLevel(totalXP, level, domain.XPPerLevelTimePlayed, domain.MinutesPerTimePlayedLevel)
	projection.TimeRemaining = &estimate
	respondJSON(w, http.StatusOK, projection)
}
