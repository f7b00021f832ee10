package leveling

import "sort"

// Milestone is a level of interest placed on a progress bar that ends at a max level
type Milestone struct {
	Level      int     `json:"level"`
	RequiredXP int64   `json:"required_xp"`
	Position   float64 `json:"position"`
	Completed  bool    `json:"completed"`
}

// MilestoneProgress places each milestone level on a 0..1 bar measured in XP up to maxLevel.
// Levels are sorted and deduplicated; a milestone is completed once currentLevel reaches it.
func (t *Table) MilestoneProgress(currentLevel, maxLevel int, levels []int) []Milestone {
	sorted := make([]int, 0, len(levels))
	seen := make(map[int]bool, len(levels))
	for _, l := range levels {
		if l < 1 || seen[l] {
			continue
		}
		seen[l] = true
		sorted = append(sorted, l)
	}
	sort.Ints(sorted)

	maxXP := t.XPRequiredForLevel(maxLevel)
	out := make([]Milestone, 0, len(sorted))
	for _, level := range sorted {
		required := t.XPRequiredForLevel(level)
		position := 0.0
		if maxXP > 0 {
			position = float64(required) / float64(maxXP)
		}
		out = append(out, Milestone{
			Level:      level,
			RequiredXP: required,
			Position:   position,
			Completed:  currentLevel >= level,
		})
	}
	return out
}
