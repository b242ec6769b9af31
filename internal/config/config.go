package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the blog
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults (first non-zero value wins).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the admin credential hash,
	// session lifetime, and the deployment environment.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the on-disk article store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AdminPasswordHash is the single admin credential in "salt$hexdigest"
	// form, produced by the password service. It is supplied externally and
	// never created or rotated by the application. May be empty at startup;
	// the login path then fails with a server error.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// SessionDuration specifies how long an admin session remains valid
	// after creation (e.g. "24h", "30m").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Environment is the deployment environment name. When set to
	// "production", session cookies are marked Secure.
	// Env: APP_ENV
	Environment string `env:"ENV"`
}

// Storage groups the configuration for the persistence layer.
type Storage struct {
	// Files holds the file-system settings for the article record store.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the article record store.
type Files struct {
	// ArticlesDir is the directory where article JSON records are stored,
	// one file per slug. Created on first write if absent.
	// Env: STORAGE_FILES_ARTICLES_DIR
	ArticlesDir string `env:"ARTICLES_DIR"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval controls how often the session sweeper purges expired
	// sessions (e.g. "10m").
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins per field):
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
