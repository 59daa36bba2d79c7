package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gallery
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Admin holds the administrator workflow settings: the first-run
	// password, the security question used for credential reset, and the
	// attempt/lockout/session windows.
	Admin Admin `envPrefix:"ADMIN_"`

	// Security holds the checksum salt and session-token signing settings.
	Security Security `envPrefix:"SECURITY_"`

	// Catalog holds pagination settings for the visible model subset.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Admin holds the settings of the single privileged workflow.
type Admin struct {
	// DefaultPassword is the password whose checksum seeds the credential
	// store on first run. Meant to be changed immediately after.
	// Env: ADMIN_DEFAULT_PASSWORD
	DefaultPassword string `env:"DEFAULT_PASSWORD"`

	// SecurityQuestion is shown during the credential-reset flow.
	// Env: ADMIN_SECURITY_QUESTION
	SecurityQuestion string `env:"SECURITY_QUESTION"`

	// SecurityAnswer is the answer whose checksum seeds the credential
	// store on first run. Compared case-insensitively and trimmed.
	// Env: ADMIN_SECURITY_ANSWER
	SecurityAnswer string `env:"SECURITY_ANSWER"`

	// SessionDuration is the inactivity window after which an
	// authenticated session is considered stale (e.g. "168h").
	// Env: ADMIN_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// MaxLoginAttempts is the failed-verification count at which the
	// lockout activates.
	// Env: ADMIN_MAX_LOGIN_ATTEMPTS
	MaxLoginAttempts int `env:"MAX_LOGIN_ATTEMPTS"`

	// LockoutDuration is how long login attempts are rejected after the
	// attempt limit is reached (e.g. "15m").
	// Env: ADMIN_LOCKOUT_DURATION
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`
}

// Security holds salt and token settings. The checksum salt participates in
// the credential checksum and must stay stable across runs, or every stored
// checksum stops matching.
type Security struct {
	// HashSalt is appended to every secret before checksumming.
	// Env: SECURITY_HASH_SALT
	HashSalt string `env:"HASH_SALT"`

	// TokenSignKey signs session tokens. When empty, tokens degrade to
	// plain unique strings, which is sufficient for a single-user store.
	// Env: SECURITY_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the issuer label embedded in signed session tokens.
	// Env: SECURITY_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Catalog holds pagination settings for the filtered model view.
type Catalog struct {
	// InitialLoad is the page size the cursor resets to after every
	// recomputation of the visible subset.
	// Env: CATALOG_INITIAL_LOAD
	InitialLoad int `env:"INITIAL_LOAD"`

	// ModelsPerLoad is the increment applied by every load-more request.
	// Env: CATALOG_MODELS_PER_LOAD
	ModelsPerLoad int `env:"MODELS_PER_LOAD"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database file.
type DB struct {
	// DSN is the sqlite file path (e.g. "gallery.db"). The file is
	// created on first run.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
