package config

import (
	"fmt"
	"time"
)

// Default values applied by GetClientConfig for fields absent from every
// configuration source. The client must start with zero configuration; the
// outbound adapters degrade gracefully when their API keys are missing.
const (
	DefaultStorageBackend = "sqlite"
	DefaultDSN            = "pinbook.db"
	DefaultStorageDir     = "pinbook-data"
	DefaultKeyPrefix      = "pinbook:"

	DefaultMapsBaseURL  = "https://maps.googleapis.com"
	DefaultMapsCountry  = "jp"
	DefaultMapsLanguage = "ja"

	DefaultNavigationBaseURL = "https://www.google.com/maps/dir/"

	DefaultCleanupBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultCleanupModel   = "gemini-3-flash-preview"

	DefaultLocationEndpoint = "https://ipapi.co/json/"
)

const (
	defaultRequestTimeout  = 10 * time.Second
	defaultDebounce        = 300 * time.Millisecond
	defaultCleanupTimeout  = 20 * time.Second
	defaultLocationTimeout = 15 * time.Second
	defaultLocationTTL     = 60 * time.Second
)

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend selects the key-value substrate: "sqlite" or "file".
	Backend string
	// DSN is the SQLite database file path (sqlite backend).
	DSN string
	// Dir is the data directory (file backend).
	Dir string
	// KeyPrefix is prepended to every storage key.
	KeyPrefix string
}

// ClientMaps holds mapping service settings used by the adapters.
type ClientMaps struct {
	APIKey           string
	BaseURL          string
	Country          string
	Language         string
	RequestTimeout   time.Duration
	DebounceInterval time.Duration
}

// ClientNavigation holds deep-link settings.
type ClientNavigation struct {
	BaseURL string
}

// ClientCleanup holds text-cleanup endpoint settings.
type ClientCleanup struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout time.Duration
}

// ClientLocation holds device-location provider settings.
type ClientLocation struct {
	Endpoint       string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

// ClientSpeech holds speech-to-text capability settings.
type ClientSpeech struct {
	Command string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig], with defaults applied.
type ClientConfig struct {
	Storage    ClientStorage
	Maps       ClientMaps
	Navigation ClientNavigation
	Cleanup    ClientCleanup
	Location   ClientLocation
	Speech     ClientSpeech
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills defaults for anything left unset,
// and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := clientView(cfg)
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func clientView(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{
			Backend:   cfg.Storage.Backend,
			DSN:       cfg.Storage.DSN,
			Dir:       cfg.Storage.Dir,
			KeyPrefix: cfg.Storage.KeyPrefix,
		},
		Maps: ClientMaps{
			APIKey:           cfg.Maps.APIKey,
			BaseURL:          cfg.Maps.BaseURL,
			Country:          cfg.Maps.Country,
			Language:         cfg.Maps.Language,
			RequestTimeout:   cfg.Maps.RequestTimeout,
			DebounceInterval: cfg.Maps.DebounceInterval,
		},
		Navigation: ClientNavigation{
			BaseURL: cfg.Navigation.BaseURL,
		},
		Cleanup: ClientCleanup{
			APIKey:         cfg.Cleanup.APIKey,
			BaseURL:        cfg.Cleanup.BaseURL,
			Model:          cfg.Cleanup.Model,
			RequestTimeout: cfg.Cleanup.RequestTimeout,
		},
		Location: ClientLocation{
			Endpoint:       cfg.Location.Endpoint,
			CacheTTL:       cfg.Location.CacheTTL,
			RequestTimeout: cfg.Location.RequestTimeout,
		},
		Speech: ClientSpeech{
			Command: cfg.Speech.Command,
		},
	}
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultDSN
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = DefaultStorageDir
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = DefaultKeyPrefix
	}

	if cfg.Maps.BaseURL == "" {
		cfg.Maps.BaseURL = DefaultMapsBaseURL
	}
	if cfg.Maps.Country == "" {
		cfg.Maps.Country = DefaultMapsCountry
	}
	if cfg.Maps.Language == "" {
		cfg.Maps.Language = DefaultMapsLanguage
	}
	if cfg.Maps.RequestTimeout == 0 {
		cfg.Maps.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Maps.DebounceInterval == 0 {
		cfg.Maps.DebounceInterval = defaultDebounce
	}

	if cfg.Navigation.BaseURL == "" {
		cfg.Navigation.BaseURL = DefaultNavigationBaseURL
	}

	if cfg.Cleanup.BaseURL == "" {
		cfg.Cleanup.BaseURL = DefaultCleanupBaseURL
	}
	if cfg.Cleanup.Model == "" {
		cfg.Cleanup.Model = DefaultCleanupModel
	}
	if cfg.Cleanup.RequestTimeout == 0 {
		cfg.Cleanup.RequestTimeout = defaultCleanupTimeout
	}

	if cfg.Location.Endpoint == "" {
		cfg.Location.Endpoint = DefaultLocationEndpoint
	}
	if cfg.Location.CacheTTL == 0 {
		cfg.Location.CacheTTL = defaultLocationTTL
	}
	if cfg.Location.RequestTimeout == 0 {
		cfg.Location.RequestTimeout = defaultLocationTimeout
	}
}
