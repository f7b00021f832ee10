package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Hero errors
	ErrMsgHeroNotFound = "hero not found"

	// Badge errors
	ErrMsgBadgeNotFound     = "badge not found"
	ErrMsgInvalidLevel      = "level must be at least 1"
	ErrMsgInvalidCategory   = "invalid badge category"
	ErrMsgInvalidXPPerLevel = "xp per level must be positive"

	// Goal errors
	ErrMsgGoalNotSet       = "goal not set"
	ErrMsgInvalidGoalLevel = "goal level must be at least 1"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Hero errors
	ErrHeroNotFound = errors.New(ErrMsgHeroNotFound)

	// Badge errors
	ErrBadgeNotFound     = errors.New(ErrMsgBadgeNotFound)
	ErrInvalidLevel      = errors.New(ErrMsgInvalidLevel)
	ErrInvalidCategory   = errors.New(ErrMsgInvalidCategory)
	ErrInvalidXPPerLevel = errors.New(ErrMsgInvalidXPPerLevel)

	// Goal errors
	ErrGoalNotSet       = errors.New(ErrMsgGoalNotSet)
	ErrInvalidGoalLevel = errors.New(ErrMsgInvalidGoalLevel)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
