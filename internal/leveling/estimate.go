package leveling

import (
	"fmt"
	"math"
	"strings"
)

// TimeEstimate is remaining play time expressed in days, hours and minutes
type TimeEstimate struct {
	RemainingXP  int64   `json:"remaining_xp"`
	TotalMinutes float64 `json:"total_minutes"`
	Days         int64   `json:"days"`
	Hours        int64   `json:"hours"`
	Minutes      int64   `json:"minutes"`
	Text         string  `json:"text"`
}

// EstimateTimeToLevel converts the XP still missing for targetLevel into play time,
// using a time-based badge category worth xpPerTimeLevel XP per level, where each
// level takes minutesPerLevel minutes to earn.
func (t *Table) EstimateTimeToLevel(currentXP int64, targetLevel int, xpPerTimeLevel int64, minutesPerLevel float64) TimeEstimate {
	remaining := t.XPToGoal(currentXP, targetLevel)
	return EstimateTime(remaining, xpPerTimeLevel, minutesPerLevel)
}

// EstimateTime converts remaining XP into play time
func EstimateTime(remainingXP, xpPerTimeLevel int64, minutesPerLevel float64) TimeEstimate {
	est := TimeEstimate{RemainingXP: remainingXP}
	if remainingXP <= 0 {
		est.Text = EstimateTextDone
		return est
	}
	if xpPerTimeLevel <= 0 || minutesPerLevel <= 0 || math.IsNaN(minutesPerLevel) || math.IsInf(minutesPerLevel, 0) {
		est.Text = EstimateTextUnknown
		return est
	}

	levels := float64(remainingXP) / float64(xpPerTimeLevel)
	est.TotalMinutes = levels * minutesPerLevel

	whole := int64(math.MaxInt64)
	if est.TotalMinutes < math.MaxInt64 {
		whole = int64(math.Floor(est.TotalMinutes))
	} else {
		est.TotalMinutes = math.MaxInt64
	}
	est.Days = whole / MinutesPerDay
	est.Hours = (whole % MinutesPerDay) / MinutesPerHour
	est.Minutes = whole % MinutesPerHour
	est.Text = FormatDuration(est.Days, est.Hours, est.Minutes)
	return est
}

// FormatDuration renders a day/hour/minute breakdown, skipping zero parts.
// An all-zero breakdown renders as "~1 min" because it only occurs when some
// time under a minute remains.
func FormatDuration(days, hours, minutes int64) string {
	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", minutes))
	}
	if len(parts) == 0 {
		return EstimateTextUnderMin
	}
	return strings.Join(parts, " ")
}
