package leveling

import "math"

// Contribution is one trackable counter: a badge level and the XP each level past 1 is worth
type Contribution struct {
	Level      int   `json:"level"`
	XPPerLevel int64 `json:"xp_per_level"`
}

// XP returns the experience this counter contributes.
// Level 1 is the starting point and earns nothing; malformed values contribute 0.
func (c Contribution) XP() int64 {
	if c.Level <= 1 || c.XPPerLevel <= 0 {
		return 0
	}
	steps := int64(c.Level - 1)
	if steps > math.MaxInt64/c.XPPerLevel {
		return math.MaxInt64
	}
	return steps * c.XPPerLevel
}

// ComputeTotalXP sums the contributions. Duplicates count independently and the
// result saturates at math.MaxInt64 rather than wrapping.
func ComputeTotalXP(contributions []Contribution) int64 {
	total := int64(0)
	for _, c := range contributions {
		total = addSaturating(total, c.XP())
	}
	return total
}

func addSaturating(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSaturating(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
