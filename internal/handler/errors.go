package handler

// User-facing error messages. They never expose internal error details.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgHeroNotFoundError      = "Hero not found"
	ErrMsgBadgeNotFoundError     = "Badge not found"
	ErrMsgGoalNotSetError        = "No goal is set"
	ErrMsgInvalidLevelError      = "Level must be at least 1"
	ErrMsgInvalidGoalLevelError  = "Goal level must be at least 1"
	ErrMsgInvalidCategoryError   = "Unknown badge category"
	ErrMsgInvalidXPPerLevelError = "Custom badges need a positive xp_per_level"
)

// Request error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidHeroKey        = "Invalid hero key"
	ErrMsgInvalidBadgeKey       = "Invalid badge key"
)

// Success messages
const (
	MsgHeroDeleted = "Hero deleted"
	MsgGoalCleared = "Goal cleared"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDBFailed       = "database connection failed"
)
