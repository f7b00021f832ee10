package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// BadgeCategory determines how much XP each level of a badge is worth
type BadgeCategory string

const (
	CategoryHeroSpecific BadgeCategory = "hero_specific"
	CategoryWins         BadgeCategory = "wins"
	CategoryTimePlayed   BadgeCategory = "time_played"
	CategoryCustom       BadgeCategory = "custom" // carries its own XPPerLevel
)

// XP per badge level for the fixed categories
const (
	XPPerLevelHeroSpecific int64 = 200
	XPPerLevelWins         int64 = 400
	XPPerLevelTimePlayed   int64 = 600
)

// MinutesPerTimePlayedLevel is the play time one time_played badge level represents
const MinutesPerTimePlayedLevel = 20

// GlobalScope is the goal scope covering every hero
const GlobalScope = "global"

// FixedCategories lists the categories whose XP per level is a constant
var FixedCategories = []BadgeCategory{CategoryHeroSpecific, CategoryWins, CategoryTimePlayed}

// IsValid reports whether c is a known category
func (c BadgeCategory) IsValid() bool {
	switch c {
	case CategoryHeroSpecific, CategoryWins, CategoryTimePlayed, CategoryCustom:
		return true
	}
	return false
}

// FixedXPPerLevel returns the constant XP per level of a fixed category.
// Custom and unknown categories return false.
func (c BadgeCategory) FixedXPPerLevel() (int64, bool) {
	switch c {
	case CategoryHeroSpecific:
		return XPPerLevelHeroSpecific, true
	case CategoryWins:
		return XPPerLevelWins, true
	case CategoryTimePlayed:
		return XPPerLevelTimePlayed, true
	}
	return 0, false
}

// DisplayName renders the category for people, e.g. "Hero Specific".
// A cases.Caser is stateful, so each call gets its own.
func (c BadgeCategory) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

// Badge is a per-hero trackable counter such as "Eliminations"
type Badge struct {
	HeroKey     string        `json:"hero_key"`
	BadgeKey    string        `json:"badge_key"`    // "eliminations", "wins"
	DisplayName string        `json:"display_name"` // "Eliminations"
	Category    BadgeCategory `json:"category"`
	Level       int           `json:"level"`
	XPPerLevel  int64         `json:"xp_per_level"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Contribution converts the badge into engine input
func (b Badge) Contribution() leveling.Contribution {
	return leveling.Contribution{Level: b.Level, XPPerLevel: b.XPPerLevel}
}

// XP is the experience this badge currently contributes
func (b Badge) XP() int64 {
	return b.Contribution().XP()
}

// Contributions converts a badge list into engine input
func Contributions(badges []Badge) []leveling.Contribution {
	out := make([]leveling.Contribution, len(badges))
	for i, b := range badges {
		out[i] = b.Contribution()
	}
	return out
}

// CategoryXPPerLevel maps each fixed category to its XP per level, the shape
// goal projections use for badges-needed counts
func CategoryXPPerLevel() map[string]int64 {
	out := make(map[string]int64, len(FixedCategories))
	for _, c := range FixedCategories {
		xp, _ := c.FixedXPPerLevel()
		out[string(c)] = xp
	}
	return out
}
