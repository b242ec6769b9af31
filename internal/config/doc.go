// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. The merged result is validated before use so that the
// rest of the application can rely on a well-formed configuration.
package config
