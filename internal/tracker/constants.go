package tracker

// Cache settings
const (
	// CacheSchemaVersion invalidates cached summaries when their shape changes
	CacheSchemaVersion = "1.0"

	globalCacheKey = "global"
)

// Log messages
const (
	LogMsgHeroLeveledUp       = "Hero leveled up"
	LogMsgGlobalLeveledUp     = "Global level up"
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgGoalReached         = "Goal reached"
	LogMsgGoalLookupFailed    = "Failed to load goal"
	LogMsgPublishFailed       = "Failed to publish tracker event"
	LogMsgShuttingDown        = "Tracker service shutting down..."
	LogMsgShutdownComplete    = "Tracker service shutdown complete"
)
