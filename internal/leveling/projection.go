package leveling

// XPToGoal returns how much XP is still missing to reach targetLevel, never negative
func (t *Table) XPToGoal(currentXP int64, targetLevel int) int64 {
	if currentXP < 0 {
		currentXP = 0
	}
	remaining := t.XPRequiredForLevel(targetLevel) - currentXP
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BadgesNeededForGoal converts remaining XP into badge levels of one category.
// It rounds up so the remaining work is never under-reported.
func BadgesNeededForGoal(xpToGoal, xpPerLevel int64) int64 {
	if xpToGoal <= 0 || xpPerLevel <= 0 {
		return 0
	}
	return (xpToGoal + xpPerLevel - 1) / xpPerLevel
}

// GoalProjection summarises the distance from a total XP value to a target level
type GoalProjection struct {
	TargetLevel   int              `json:"target_level"`
	RequiredXP    int64            `json:"required_xp"`
	XPToGoal      int64            `json:"xp_to_goal"`
	Reached       bool             `json:"reached"`
	BadgesNeeded  map[string]int64 `json:"badges_needed,omitempty"`
	TimeRemaining *TimeEstimate    `json:"time_remaining,omitempty"`
}

// ProjectGoal builds a GoalProjection. xpPerLevelByCategory maps a category name to the
// XP one badge level of that category is worth; each gets a badges-needed count.
func (t *Table) ProjectGoal(currentXP int64, targetLevel int, xpPerLevelByCategory map[string]int64) GoalProjection {
	remaining := t.XPToGoal(currentXP, targetLevel)
	p := GoalProjection{
		TargetLevel: targetLevel,
		RequiredXP:  t.XPRequiredForLevel(targetLevel),
		XPToGoal:    remaining,
		Reached:     remaining == 0,
	}

	if len(xpPerLevelByCategory) > 0 {
		p.BadgesNeeded = make(map[string]int64, len(xpPerLevelByCategory))
		for category, xpPerLevel := range xpPerLevelByCategory {
			p.BadgesNeeded[category] = BadgesNeededForGoal(remaining, xpPerLevel)
		}
	}
	return p
}
