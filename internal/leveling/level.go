package leveling

// LevelDetails describes where a total XP value sits on the curve.
// It is derived from total XP on demand and never stored on its own.
type LevelDetails struct {
	Level                int   `json:"level"`
	XPTowardsNextLevel   int64 `json:"xp_towards_next_level"`
	XPNeededForNextLevel int64 `json:"xp_needed_for_next_level"`
	CurrentLevelBaseXP   int64 `json:"current_level_base_xp"`
	NextLevelBaseXP      int64 `json:"next_level_base_xp"`
}

// Progress returns the completed fraction of the current level in [0, 1)
func (d LevelDetails) Progress() float64 {
	if d.XPNeededForNextLevel <= 0 {
		return 0
	}
	return float64(d.XPTowardsNextLevel) / float64(d.XPNeededForNextLevel)
}

// LevelDetails resolves total XP into a level and the progress within it.
// Negative XP is treated as 0.
func (t *Table) LevelDetails(totalXP int64) LevelDetails {
	if totalXP < 0 {
		totalXP = 0
	}

	for _, tier := range t.tiers {
		startOfNextTier := tier.End()
		if totalXP < startOfNextTier {
			return LevelDetails{
				Level:                tier.Level,
				XPTowardsNextLevel:   totalXP - tier.CumulativeXPAtStart,
				XPNeededForNextLevel: tier.XPToNextLevel,
				CurrentLevelBaseXP:   tier.CumulativeXPAtStart,
				NextLevelBaseXP:      startOfNextTier,
			}
		}
	}

	// Past the table every level costs the same
	tableEnd := t.TableEnd()
	levelsPastTable := (totalXP - tableEnd) / t.tailCost
	base := tableEnd + levelsPastTable*t.tailCost

	return LevelDetails{
		Level:                t.LastLevel() + 1 + int(levelsPastTable),
		XPTowardsNextLevel:   totalXP - base,
		XPNeededForNextLevel: t.tailCost,
		CurrentLevelBaseXP:   base,
		NextLevelBaseXP:      addSaturating(base, t.tailCost),
	}
}

// Level is shorthand for LevelDetails(totalXP).Level
func (t *Table) Level(totalXP int64) int {
	return t.LevelDetails(totalXP).Level
}

// XPRequiredForLevel returns the cumulative XP at which targetLevel begins.
// It is the exact inverse of LevelDetails: LevelDetails(XPRequiredForLevel(L)).Level == L.
// Levels <= 0 need no XP.
func (t *Table) XPRequiredForLevel(targetLevel int) int64 {
	if targetLevel <= 0 {
		return 0
	}
	if tier, ok := t.TierAt(targetLevel); ok {
		return tier.CumulativeXPAtStart
	}

	levelsPastTable := int64(targetLevel - (t.LastLevel() + 1))
	return addSaturating(t.TableEnd(), mulSaturating(levelsPastTable, t.tailCost))
}
