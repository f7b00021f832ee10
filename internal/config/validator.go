package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

var (
	// ErrEnvSchema is returned when ENV_SCHEMA_VERSION is absent or stale
	ErrEnvSchema = errors.New("env schema")
	// ErrMissingEnv is returned when required variables are unset
	ErrMissingEnv = errors.New("missing required environment variables")
)

// RequiredEnvVars must be non-empty before the tracker starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholders are the values shipped in .env.example
var placeholders = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// ValidateEnv fails fast on a stale .env file or unset required variables.
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("%w: ENV_SCHEMA_VERSION is not set (expected %s)", ErrEnvSchema, ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("%w: ENV_SCHEMA_VERSION mismatch, expected %s, got %s", ErrEnvSchema, ExpectedEnvSchemaVersion, version)
	}

	missing := make([]string, 0, len(RequiredEnvVars))
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that work
// but should not reach production.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == placeholders[key] {
			warnings = append(warnings, fmt.Sprintf("%s still holds the .env.example placeholder", key))
		}
	}

	switch raw := os.Getenv("MAX_LEVEL"); {
	case raw == "":
		warnings = append(warnings, fmt.Sprintf("MAX_LEVEL not set, milestone progress is measured against level %d", DefaultMaxLevel))
	default:
		if _, err := strconv.Atoi(raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("MAX_LEVEL=%q is not an integer, falling back to level %d", raw, DefaultMaxLevel))
		}
	}

	return warnings, nil
}
