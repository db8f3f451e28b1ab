package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for pinbook.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the on-device key-value substrate.
	Storage Storage `envPrefix:"STORAGE_"`

	// Maps holds configuration for the mapping service adapters
	// (reverse geocoding, place autocomplete, place details).
	Maps Maps `envPrefix:"MAPS_"`

	// Navigation holds the external deep-link settings.
	Navigation Navigation `envPrefix:"NAV_"`

	// Cleanup holds configuration for the dictation text-cleanup call.
	Cleanup Cleanup `envPrefix:"CLEANUP_"`

	// Location holds configuration for the device location provider.
	Location Location `envPrefix:"LOCATION_"`

	// Speech holds configuration for the speech-to-text capability.
	Speech Speech `envPrefix:"SPEECH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds settings for the key-value persistence substrate.
type Storage struct {
	// Backend selects the substrate implementation: "sqlite" or "file".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the SQLite database file path used by the sqlite backend.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Dir is the data directory used by the file backend (one JSON
	// document per storage key).
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// KeyPrefix is prepended to every storage key, so several logical
	// namespaces can share one substrate.
	// Env: STORAGE_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Maps holds settings for the mapping service web endpoints.
type Maps struct {
	// APIKey authorizes geocoding/autocomplete/details calls. When empty,
	// the adapters degrade to their fallback behavior instead of failing.
	// Env: MAPS_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the mapping service root (e.g. "https://maps.googleapis.com").
	// Env: MAPS_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Country restricts autocomplete results (ISO 3166-1 alpha-2).
	// Env: MAPS_COUNTRY
	Country string `env:"COUNTRY"`

	// Language is the response language for geocoding results.
	// Env: MAPS_LANGUAGE
	Language string `env:"LANGUAGE"`

	// RequestTimeout bounds a single outbound request.
	// Env: MAPS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DebounceInterval is how long the search screen waits after the last
	// keystroke before issuing an autocomplete request.
	// Env: MAPS_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`
}

// Navigation holds deep-link settings for the external map application.
type Navigation struct {
	// BaseURL is the deep-link template root
	// (e.g. "https://www.google.com/maps/dir/").
	// Env: NAV_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Cleanup holds settings for the dictation text-cleanup endpoint.
type Cleanup struct {
	// APIKey authorizes the text-cleanup call. When empty, dictation
	// passes the raw transcript through unchanged.
	// Env: CLEANUP_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the generative-language API root.
	// Env: CLEANUP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the model name used for cleanup requests.
	// Env: CLEANUP_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single cleanup request.
	// Env: CLEANUP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Location holds settings for the device location provider.
type Location struct {
	// Endpoint is the IP-geolocation URL returning the current position.
	// Env: LOCATION_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// CacheTTL is the freshness window during which the last reading is
	// reused instead of issuing a new lookup.
	// Env: LOCATION_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// RequestTimeout bounds a single location lookup.
	// Env: LOCATION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Speech holds settings for the speech-to-text capability.
type Speech struct {
	// Command is the external speech-to-text executable (plus arguments,
	// space-separated) whose stdout lines are treated as partial
	// transcripts. An empty value means the capability is unavailable.
	// Env: SPEECH_COMMAND
	Command string `env:"COMMAND"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
