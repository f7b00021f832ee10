package domain

// AchievementKind selects which number an achievement threshold is compared against
type AchievementKind string

const (
	AchievementHeroLevel     AchievementKind = "hero_level"      // any hero reaches Threshold
	AchievementGlobalLevel   AchievementKind = "global_level"    // global level reaches Threshold
	AchievementBadgeLevel    AchievementKind = "badge_level"     // any badge reaches Threshold
	AchievementTotalXP       AchievementKind = "total_xp"        // global XP reaches Threshold
	AchievementHeroesAtLevel AchievementKind = "heroes_at_level" // Count heroes reach Threshold
)

// Achievement is a cosmetic unlock earned by crossing a threshold
type Achievement struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        AchievementKind `json:"kind"`
	Threshold   int64           `json:"threshold"`
	Count       int             `json:"count,omitempty"`
}

// AchievementStatus is an achievement plus whether it is unlocked
type AchievementStatus struct {
	Achievement
	Unlocked bool  `json:"unlocked"`
	Current  int64 `json:"current"`
}
