package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// LevelResult is the output of the level command
type LevelResult struct {
	TotalXP int64 `json:"total_xp"`
	leveling.LevelDetails
}

// RequiredResult is the output of the required command
type RequiredResult struct {
	Level      int   `json:"level"`
	RequiredXP int64 `json:"required_xp"`
}

// TableResult is the output of the table command
type TableResult struct {
	Curve    string          `json:"curve"`
	Tiers    []leveling.Tier `json:"tiers"`
	TableEnd int64           `json:"table_end"`
	TailCost int64           `json:"tail_cost_per_level"`
}

// GoalResult is the output of the goal command
type GoalResult struct {
	CurrentXP    int64 `json:"current_xp"`
	CurrentLevel int   `json:"current_level"`
	leveling.GoalProjection
}

// TotalResult is the output of the total command
type TotalResult struct {
	TotalXP int64 `json:"total_xp"`
	leveling.LevelDetails
}

func newLevelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "level <total_xp>",
		Short: "Resolve total XP into a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xp, err := parseXP(args[0])
			if err != nil {
				return err
			}
			table, err := opts.table()
			if err != nil {
				return err
			}
			return opts.print(cmd, &LevelResult{TotalXP: xp, LevelDetails: table.LevelDetails(xp)})
		},
	}
}

func newRequiredCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "required <level>",
		Short: "Show the total XP at which a level starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(args[0])
			if err != nil {
				return err
			}
			table, err := opts.table()
			if err != nil {
				return err
			}
			return opts.print(cmd, &RequiredResult{Level: level, RequiredXP: table.XPRequiredForLevel(level)})
		},
	}
}

func newTableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the explicit tiers of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			return opts.print(cmd, &TableResult{
				Curve:    opts.curve,
				Tiers:    table.Tiers(),
				TableEnd: table.TableEnd(),
				TailCost: table.TailCostPerLevel(),
			})
		},
	}
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "goal <current_xp> <target_level>",
		Short: "Project the XP, badges and play time left to reach a level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xp, err := parseXP(args[0])
			if err != nil {
				return err
			}
			target, err := parseLevel(args[1])
			if err != nil {
				return err
			}
			table, err := opts.table()
			if err != nil {
				return err
			}

			projection := table.ProjectGoal(xp, target, domain.CategoryXPPerLevel())
			estimate := table.EstimateTimeToLevel(xp, target, domain.XPPerLevelTimePlayed, domain.MinutesPerTimePlayedLevel)
			projection.TimeRemaining = &estimate

			return opts.print(cmd, &GoalResult{
				CurrentXP:      xp,
				CurrentLevel:   table.Level(xp),
				GoalProjection: projection,
			})
		},
	}
}

func newTotalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "total <category:level[:xp_per_level]>...",
		Short: "Sum badge contributions and resolve the combined level",
		Example: "  xpcalc total hero_specific:11 wins:3\n" +
			"  xpcalc total custom:4:250",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contributions := make([]leveling.Contribution, 0, len(args))
			for _, arg := range args {
				c, err := parseContribution(arg)
				if err != nil {
					return err
				}
				contributions = append(contributions, c)
			}
			table, err := opts.table()
			if err != nil {
				return err
			}

			total := leveling.ComputeTotalXP(contributions)
			return opts.print(cmd, &TotalResult{TotalXP: total, LevelDetails: table.LevelDetails(total)})
		},
	}
}

// parseContribution reads "category:level" for fixed categories and
// "custom:level:xp_per_level" for custom badges
func parseContribution(arg string) (leveling.Contribution, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return leveling.Contribution{}, fmt.Errorf("invalid badge %q: want category:level[:xp_per_level]", arg)
	}

	category := domain.BadgeCategory(parts[0])
	if !category.IsValid() {
		return leveling.Contribution{}, fmt.Errorf("invalid badge %q: %w", arg, domain.ErrInvalidCategory)
	}

	level, err := strconv.Atoi(parts[1])
	if err != nil {
		return leveling.Contribution{}, fmt.Errorf("invalid badge %q: level must be an integer", arg)
	}

	xpPerLevel, fixed := category.FixedXPPerLevel()
	if !fixed {
		if len(parts) != 3 {
			return leveling.Contribution{}, fmt.Errorf("invalid badge %q: custom badges need an xp_per_level", arg)
		}
		xpPerLevel, err = strconv.ParseInt(parts[2], 10, 64)
		if err != nil || xpPerLevel <= 0 {
			return leveling.Contribution{}, fmt.Errorf("invalid badge %q: %w", arg, domain.ErrInvalidXPPerLevel)
		}
	}

	return leveling.Contribution{Level: level, XPPerLevel: xpPerLevel}, nil
}
