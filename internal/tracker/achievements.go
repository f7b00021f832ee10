package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
	"github.com/osse101/HeroTracker_Go/internal/validation"
)

// AchievementFile is the on-disk achievements catalogue
type AchievementFile struct {
	Version      string               `json:"version"`
	Achievements []domain.Achievement `json:"achievements"`
}

// LoadAchievements validates the catalogue against its schema and decodes it.
// A nil validator skips schema validation.
func LoadAchievements(path, schemaPath string, v validation.SchemaValidator) ([]domain.Achievement, error) {
	if v != nil {
		if err := v.ValidateFile(path, schemaPath); err != nil {
			return nil, fmt.Errorf("achievements schema validation failed: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements file %s: %w", path, err)
	}

	var file AchievementFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse achievements file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Achievements))
	for _, a := range file.Achievements {
		if seen[a.Key] {
			return nil, fmt.Errorf("duplicate achievement key %q in %s", a.Key, path)
		}
		seen[a.Key] = true
	}

	return file.Achievements, nil
}

// snapshot holds the numbers achievements are evaluated against
type snapshot struct {
	heroXP        map[string]int64
	heroLevels    []int
	globalXP      int64
	maxBadgeLevel int
}

func newSnapshot(table *leveling.Table, heroes []domain.Hero, badges []domain.Badge) snapshot {
	snap := snapshot{heroXP: heroTotals(badges)}
	for _, h := range heroes {
		if _, ok := snap.heroXP[h.Key]; !ok {
			snap.heroXP[h.Key] = 0
		}
	}
	for _, b := range badges {
		if b.Level > snap.maxBadgeLevel {
			snap.maxBadgeLevel = b.Level
		}
	}

	snap.globalXP = leveling.ComputeTotalXP(domain.Contributions(badges))
	snap.heroLevels = make([]int, 0, len(snap.heroXP))
	for _, xp := range snap.heroXP {
		snap.heroLevels = append(snap.heroLevels, table.Level(xp))
	}
	return snap
}

func (s snapshot) maxHeroLevel() int {
	highest := 0
	for _, l := range s.heroLevels {
		if l > highest {
			highest = l
		}
	}
	return highest
}

func (s snapshot) heroesAtLevel(level int64) int64 {
	var n int64
	for _, l := range s.heroLevels {
		if int64(l) >= level {
			n++
		}
	}
	return n
}

// evaluateAchievements reports every achievement against the given snapshot
func evaluateAchievements(table *leveling.Table, defs []domain.Achievement, snap snapshot) []domain.AchievementStatus {
	globalLevel := int64(table.Level(snap.globalXP))

	out := make([]domain.AchievementStatus, 0, len(defs))
	for _, def := range defs {
		status := domain.AchievementStatus{Achievement: def}
		switch def.Kind {
		case domain.AchievementHeroLevel:
			status.Current = int64(snap.maxHeroLevel())
			status.Unlocked = status.Current >= def.Threshold
		case domain.AchievementGlobalLevel:
			status.Current = globalLevel
			status.Unlocked = status.Current >= def.Threshold
		case domain.AchievementBadgeLevel:
			status.Current = int64(snap.maxBadgeLevel)
			status.Unlocked = status.Current >= def.Threshold
		case domain.AchievementTotalXP:
			status.Current = snap.globalXP
			status.Unlocked = status.Current >= def.Threshold
		case domain.AchievementHeroesAtLevel:
			status.Current = snap.heroesAtLevel(def.Threshold)
			status.Unlocked = def.Count > 0 && status.Current >= int64(def.Count)
		}
		out = append(out, status)
	}
	return out
}

// newlyUnlocked returns achievements unlocked in after but not in before.
// Both slices must come from the same definitions in the same order.
func newlyUnlocked(before, after []domain.AchievementStatus) []domain.Achievement {
	var out []domain.Achievement
	for i := range after {
		if after[i].Unlocked && (i >= len(before) || !before[i].Unlocked) {
			out = append(out, after[i].Achievement)
		}
	}
	return out
}
