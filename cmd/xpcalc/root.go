package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

type rootOptions struct {
	curve  string
	format string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "xpcalc",
		Short:         "Hero progression calculator",
		Long:          "Resolve XP into levels, levels into XP, and project goals on a progression curve.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.curve, "curve", leveling.CurveStandard, "Curve name (standard, legacy) or path to a YAML curve file")
	cmd.PersistentFlags().StringVar(&opts.format, "format", string(FormatHuman), "Output format (json, human)")

	cmd.AddCommand(
		newLevelCmd(opts),
		newRequiredCmd(opts),
		newTableCmd(opts),
		newGoalCmd(opts),
		newTotalCmd(opts),
	)
	return cmd
}

func (o *rootOptions) table() (*leveling.Table, error) {
	table, err := leveling.ResolveCurve(o.curve)
	if err != nil {
		return nil, fmt.Errorf("failed to load curve %q: %w", o.curve, err)
	}
	return table, nil
}

func (o *rootOptions) print(cmd *cobra.Command, resp interface{}) error {
	out, err := FormatResponse(resp, OutputFormat(o.format))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func parseXP(arg string) (int64, error) {
	xp, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid XP value %q: must be an integer", arg)
	}
	return xp, nil
}

func parseLevel(arg string) (int, error) {
	level, err := strconv.Atoi(arg)
	if err != nil || level < 1 {
		return 0, fmt.Errorf("invalid level %q: must be an integer of at least 1", arg)
	}
	return level, nil
}
