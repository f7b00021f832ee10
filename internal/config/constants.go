package config

import "time"

const (
	// Configuration file paths
	ConfigPathStandardCurve      = "configs/curves/standard.yaml"
	ConfigPathLegacyCurve        = "configs/curves/legacy.yaml"
	ConfigPathAchievements       = "configs/achievements.json"
	ConfigPathAchievementsSchema = "configs/schemas/achievements.schema.json"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "hero-tracker"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultMaxLevel         = 100
	DefaultSummaryCacheSize = 256
	DefaultSummaryCacheTTL  = 30 * time.Second
)

// DefaultMilestoneLevels are the checkpoints drawn on progress bars
var DefaultMilestoneLevels = []int{10, 25, 50, 75, 100}
