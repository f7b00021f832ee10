package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Tracker metric names
const (
	MetricNameBadgeUpdates         = "badge_updates_total"
	MetricNameBadgeXPGained        = "badge_xp_gained_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameGoalsReached         = "goals_reached_total"
	MetricNameSummaryCacheHits     = "summary_cache_hits_total"
	MetricNameSummaryCacheMisses   = "summary_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Tracker metric help text
const (
	HelpTextBadgeUpdates         = "Total number of badge level changes"
	HelpTextBadgeXPGained        = "Total XP gained through badge level increases"
	HelpTextLevelUps             = "Total number of level-ups"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextGoalsReached         = "Total number of goals reached"
	HelpTextSummaryCacheHits     = "Total number of summary cache hits"
	HelpTextSummaryCacheMisses   = "Total number of summary cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
	LabelScope    = "scope" // "hero" or "global"
	LabelKind     = "kind"
)

// Label values for LabelScope
const (
	ScopeHero   = "hero"
	ScopeGlobal = "global"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
