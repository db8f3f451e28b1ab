// Package config loads the pinbook configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources in that order (later non-zero values win) and exposing a
// validated client view with defaults applied.
package config
