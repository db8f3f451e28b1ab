package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSONConfig(t, `{
		"storage": {"backend": "sqlite", "dsn": "/data/pins.db", "key_prefix": "p:"},
		"maps": {"api_key": "k", "country": "jp", "debounce_interval": "400ms"},
		"navigation": {"base_url": "https://maps.example.com/dir/"},
		"cleanup": {"model": "gemini-test", "request_timeout": "5s"},
		"location": {"cache_ttl": "2m"},
		"speech": {"command": "stt"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/data/pins.db", cfg.Storage.DSN)
	assert.Equal(t, "p:", cfg.Storage.KeyPrefix)
	assert.Equal(t, "k", cfg.Maps.APIKey)
	assert.Equal(t, 400*time.Millisecond, cfg.Maps.DebounceInterval)
	assert.Equal(t, "https://maps.example.com/dir/", cfg.Navigation.BaseURL)
	assert.Equal(t, "gemini-test", cfg.Cleanup.Model)
	assert.Equal(t, 5*time.Second, cfg.Cleanup.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Location.CacheTTL)
	assert.Equal(t, "stt", cfg.Speech.Command)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeJSONConfig(t, `{"storage": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"1h"`, want: time.Hour},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
