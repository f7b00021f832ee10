package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *LevelResult:
		return formatLevelHuman(v.TotalXP, v.LevelDetails), nil
	case *TotalResult:
		return formatLevelHuman(v.TotalXP, v.LevelDetails), nil
	case *RequiredResult:
		return fmt.Sprintf("Level %d starts at %s XP", v.Level, xp(v.RequiredXP)), nil
	case *TableResult:
		return formatTableHuman(v), nil
	case *GoalResult:
		return formatGoalHuman(v), nil
	default:
		return formatJSON(resp)
	}
}

func xp(n int64) string {
	return humanize.Comma(n)
}

func formatLevelHuman(totalXP int64, d leveling.LevelDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d (%s XP)\n", d.Level, xp(totalXP))
	fmt.Fprintf(&b, "  Progress: %s / %s XP (%s)\n",
		xp(d.XPTowardsNextLevel), xp(d.XPNeededForNextLevel), percent(d.Progress()))
	fmt.Fprintf(&b, "  Next level at %s XP", xp(d.NextLevelBaseXP))
	return b.String()
}

func formatTableHuman(t *TableResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Curve: %s\n", t.Curve)
	fmt.Fprintf(&b, "%6s  %12s  %12s\n", "Level", "Starts at", "Cost")
	for _, tier := range t.Tiers {
		fmt.Fprintf(&b, "%6d  %12s  %12s\n", tier.Level, xp(tier.CumulativeXPAtStart), xp(tier.XPToNextLevel))
	}
	fmt.Fprintf(&b, "Table ends at %s XP; every later level costs %s XP", xp(t.TableEnd), xp(t.TailCost))
	return b.String()
}

func formatGoalHuman(g *GoalResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: level %d (%s XP)\n", g.TargetLevel, xp(g.RequiredXP))
	fmt.Fprintf(&b, "  Current: level %d (%s XP)\n", g.CurrentLevel, xp(g.CurrentXP))
	if g.Reached {
		b.WriteString("  Goal reached")
		return b.String()
	}

	fmt.Fprintf(&b, "  Remaining: %s XP\n", xp(g.XPToGoal))

	categories := make([]string, 0, len(g.BadgesNeeded))
	for c := range g.BadgesNeeded {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(&b, "  %s badges: %s\n", domain.BadgeCategory(c).DisplayName(), humanize.Comma(g.BadgesNeeded[c]))
	}

	if g.TimeRemaining != nil {
		fmt.Fprintf(&b, "  Time played: %s", g.TimeRemaining.Text)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func percent(f float64) string {
	return humanize.FormatFloat("#.#", f*100) + "%"
}
