package domain

import "github.com/osse101/HeroTracker_Go/internal/leveling"

// GoalSummary is a goal and how far away it is
type GoalSummary struct {
	Goal       Goal                    `json:"goal"`
	Projection leveling.GoalProjection `json:"projection"`
}

// HeroSummary is everything derived from one hero's badges
type HeroSummary struct {
	Hero       Hero                  `json:"hero"`
	Badges     []Badge               `json:"badges"`
	TotalXP    int64                 `json:"total_xp"`
	Level      leveling.LevelDetails `json:"level"`
	Goal       *GoalSummary          `json:"goal,omitempty"`
	Milestones []leveling.Milestone  `json:"milestones"`
}

// HeroLevel is one row of the global summary
type HeroLevel struct {
	HeroKey     string `json:"hero_key"`
	DisplayName string `json:"display_name"`
	TotalXP     int64  `json:"total_xp"`
	Level       int    `json:"level"`
}

// GlobalSummary is everything derived from every hero's badges
type GlobalSummary struct {
	Heroes       []HeroLevel             `json:"heroes"`
	TotalXP      int64                   `json:"total_xp"`
	Level        leveling.LevelDetails   `json:"level"`
	Goal         *GoalSummary            `json:"goal,omitempty"`
	Milestones   []leveling.Milestone    `json:"milestones"`
	MaxLevel     int                     `json:"max_level"`
	TimeToMax    leveling.TimeEstimate   `json:"time_to_max"`
	XPByCategory map[BadgeCategory]int64 `json:"xp_by_category"`
}

// LevelChange is a level before and after a write
type LevelChange struct {
	TotalXP   int64                 `json:"total_xp"`
	Before    leveling.LevelDetails `json:"before"`
	After     leveling.LevelDetails `json:"after"`
	LeveledUp bool                  `json:"leveled_up"`
}

// BadgeUpdateResult describes the effect of creating, changing or removing a badge
type BadgeUpdateResult struct {
	Badge                Badge         `json:"badge"`
	OldLevel             int           `json:"old_level"`
	XPDelta              int64         `json:"xp_delta"`
	Hero                 LevelChange   `json:"hero"`
	Global               LevelChange   `json:"global"`
	UnlockedAchievements []Achievement `json:"unlocked_achievements"`
}
