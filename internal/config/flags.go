package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-storage-backend key-value substrate implementation (sqlite|file)
//	-d sqlite database file path
//	-storage-dir file-backend data directory
//	-key-prefix storage key prefix
//	-maps-key mapping service API key
//	-maps-url mapping service base URL
//	-maps-country autocomplete country restriction
//	-maps-language geocoding response language
//	-debounce autocomplete debounce interval (e.g., "300ms")
//	-cleanup-key text-cleanup API key
//	-cleanup-model text-cleanup model name
//	-location-endpoint IP-geolocation endpoint URL
//	-speech-cmd external speech-to-text command
//	-nav-url navigation deep-link base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var storageBackend string
	var databaseDSN string
	var storageDir string
	var keyPrefix string
	var mapsKey string
	var mapsURL string
	var mapsCountry string
	var mapsLanguage string
	var debounce time.Duration
	var cleanupKey string
	var cleanupModel string
	var locationEndpoint string
	var speechCommand string
	var navURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&storageBackend, "storage-backend", "", "Key-value substrate (sqlite|file)")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database file path")
	flag.StringVar(&storageDir, "storage-dir", "", "File backend data directory")
	flag.StringVar(&keyPrefix, "key-prefix", "", "Storage key prefix")
	flag.StringVar(&mapsKey, "maps-key", "", "Mapping service API key")
	flag.StringVar(&mapsURL, "maps-url", "", "Mapping service base URL")
	flag.StringVar(&mapsCountry, "maps-country", "", "Autocomplete country restriction")
	flag.StringVar(&mapsLanguage, "maps-language", "", "Geocoding response language")
	flag.DurationVar(&debounce, "debounce", 0, "Autocomplete debounce interval (e.g., 300ms)")
	flag.StringVar(&cleanupKey, "cleanup-key", "", "Text-cleanup API key")
	flag.StringVar(&cleanupModel, "cleanup-model", "", "Text-cleanup model name")
	flag.StringVar(&locationEndpoint, "location-endpoint", "", "IP-geolocation endpoint URL")
	flag.StringVar(&speechCommand, "speech-cmd", "", "External speech-to-text command")
	flag.StringVar(&navURL, "nav-url", "", "Navigation deep-link base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			Backend:   storageBackend,
			DSN:       databaseDSN,
			Dir:       storageDir,
			KeyPrefix: keyPrefix,
		},
		Maps: Maps{
			APIKey:           mapsKey,
			BaseURL:          mapsURL,
			Country:          mapsCountry,
			Language:         mapsLanguage,
			RequestTimeout:   requestTimeout,
			DebounceInterval: debounce,
		},
		Navigation: Navigation{
			BaseURL: navURL,
		},
		Cleanup: Cleanup{
			APIKey:         cleanupKey,
			Model:          cleanupModel,
			RequestTimeout: requestTimeout,
		},
		Location: Location{
			Endpoint:       locationEndpoint,
			RequestTimeout: requestTimeout,
		},
		Speech: Speech{
			Command: speechCommand,
		},
		JSONFilePath: jsonConfigPath,
	}
}
