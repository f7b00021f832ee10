package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/osse101/HeroTracker_Go/internal/config"
	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
	"github.com/osse101/HeroTracker_Go/internal/tracker"
	"github.com/osse101/HeroTracker_Go/internal/validation"
)

// ProgressionConfig is the static configuration the tracker service runs on.
type ProgressionConfig struct {
	Table        *leveling.Table
	Achievements []domain.Achievement
}

// LoadProgressionConfig resolves the progression curve and the achievement
// definitions named by cfg. Relative file paths are looked up from the working
// directory upwards so the binary can run from any folder inside the project.
func LoadProgressionConfig(cfg *config.Config, v validation.SchemaValidator) (*ProgressionConfig, error) {
	curve := cfg.CurveFile
	if isFilePath(curve) {
		resolved, err := validation.ResolveProjectPath(curve)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedResolveConfigPath, curve, err)
		}
		curve = resolved
	}

	table, err := leveling.ResolveCurve(curve)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCurve, err)
	}
	slog.Info(LogMsgCurveLoaded,
		"curve", cfg.CurveFile,
		"last_level", table.LastLevel(),
		"table_end", table.TableEnd(),
		"tail_cost", table.TailCostPerLevel())

	achievementsPath, err := validation.ResolveProjectPath(cfg.AchievementsPath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedResolveConfigPath, cfg.AchievementsPath, err)
	}
	schemaPath, err := validation.ResolveProjectPath(cfg.AchievementsSchemaPath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedResolveConfigPath, cfg.AchievementsSchemaPath, err)
	}

	achievements, err := tracker.LoadAchievements(achievementsPath, schemaPath, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAchievements, err)
	}
	slog.Info(LogMsgAchievementsLoaded, "count", len(achievements))

	return &ProgressionConfig{Table: table, Achievements: achievements}, nil
}

func isFilePath(nameOrPath string) bool {
	lower := strings.ToLower(nameOrPath)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
