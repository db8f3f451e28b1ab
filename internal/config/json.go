package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		Backend   string `json:"backend"`
		DSN       string `json:"dsn"`
		Dir       string `json:"dir"`
		KeyPrefix string `json:"key_prefix"`
	} `json:"storage,omitempty"`

	Maps struct {
		APIKey           string   `json:"api_key"`
		BaseURL          string   `json:"base_url"`
		Country          string   `json:"country"`
		Language         string   `json:"language"`
		RequestTimeout   Duration `json:"request_timeout"`
		DebounceInterval Duration `json:"debounce_interval"`
	} `json:"maps,omitempty"`

	Navigation struct {
		BaseURL string `json:"base_url"`
	} `json:"navigation,omitempty"`

	Cleanup struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"cleanup,omitempty"`

	Location struct {
		Endpoint       string   `json:"endpoint"`
		CacheTTL       Duration `json:"cache_ttl"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"location,omitempty"`

	Speech struct {
		Command string `json:"command"`
	} `json:"speech,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Backend:   jsonCfg.Storage.Backend,
			DSN:       jsonCfg.Storage.DSN,
			Dir:       jsonCfg.Storage.Dir,
			KeyPrefix: jsonCfg.Storage.KeyPrefix,
		},
		Maps: Maps{
			APIKey:           jsonCfg.Maps.APIKey,
			BaseURL:          jsonCfg.Maps.BaseURL,
			Country:          jsonCfg.Maps.Country,
			Language:         jsonCfg.Maps.Language,
			RequestTimeout:   time.Duration(jsonCfg.Maps.RequestTimeout),
			DebounceInterval: time.Duration(jsonCfg.Maps.DebounceInterval),
		},
		Navigation: Navigation{
			BaseURL: jsonCfg.Navigation.BaseURL,
		},
		Cleanup: Cleanup{
			APIKey:         jsonCfg.Cleanup.APIKey,
			BaseURL:        jsonCfg.Cleanup.BaseURL,
			Model:          jsonCfg.Cleanup.Model,
			RequestTimeout: time.Duration(jsonCfg.Cleanup.RequestTimeout),
		},
		Location: Location{
			Endpoint:       jsonCfg.Location.Endpoint,
			CacheTTL:       time.Duration(jsonCfg.Location.CacheTTL),
			RequestTimeout: time.Duration(jsonCfg.Location.RequestTimeout),
		},
		Speech: Speech{
			Command: jsonCfg.Speech.Command,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
