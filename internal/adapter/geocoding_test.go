package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

func newTestGeocoder(t *testing.T, serverURL, apiKey string) Geocoder {
	t.Helper()

	g, err := NewGoogleGeocoder(config.ClientMaps{
		APIKey:         apiKey,
		BaseURL:        serverURL,
		Language:       "ja",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return g
}

// ── ReverseGeocode ───────────────────────────────────────────────────────────

func TestReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "35.6586,139.7454", r.URL.Query().Get("latlng"))
		assert.Equal(t, "ja", r.URL.Query().Get("language"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "日本、〒105-0011 東京都港区芝公園4-2-8",
					"types": ["street_address"],
					"address_components": [
						{"long_name": "8", "types": ["premise_number"]},
						{"long_name": "105-0011", "types": ["postal_code"]}
					]
				},
				{
					"formatted_address": "日本、〒105-0011 東京都港区芝公園4-2-8 東京タワー",
					"types": ["point_of_interest", "establishment"],
					"address_components": [
						{"long_name": "東京タワー", "types": ["point_of_interest"]}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	g := newTestGeocoder(t, srv.URL, "test-key")
	got := g.ReverseGeocode(context.Background(), 35.6586, 139.7454)

	assert.Equal(t, "東京都港区芝公園4-2-8", got.Address)
	assert.Equal(t, "東京タワー", got.PlaceName)
	assert.Equal(t, "105-0011", got.PostalCode)
}

func TestReverseGeocode_NoAPIKey_CoordinateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without an api key")
	}))
	defer srv.Close()

	g := newTestGeocoder(t, srv.URL, "")
	got := g.ReverseGeocode(context.Background(), 35.6586, 139.7454)

	assert.Equal(t, "35.6586, 139.7454", got.Address)
	assert.Empty(t, got.PlaceName)
	assert.Empty(t, got.PostalCode)
}

func TestReverseGeocode_ZeroResults_CoordinateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	g := newTestGeocoder(t, srv.URL, "test-key")
	got := g.ReverseGeocode(context.Background(), 0, 0)

	assert.Equal(t, "0, 0", got.Address)
}

func TestReverseGeocode_ServerError_CoordinateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGeocoder(t, srv.URL, "test-key")
	got := g.ReverseGeocode(context.Background(), 35.1, 139.2)

	assert.Equal(t, "35.1, 139.2", got.Address)
}

func TestReverseGeocode_NoPOIResult_NameEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "日本、〒100-0001 東京都千代田区千代田1-1",
					"types": ["street_address"],
					"address_components": [{"long_name": "100-0001", "types": ["postal_code"]}]
				}
			]
		}`))
	}))
	defer srv.Close()

	g := newTestGeocoder(t, srv.URL, "test-key")
	got := g.ReverseGeocode(context.Background(), 35.68, 139.75)

	assert.Equal(t, "東京都千代田区千代田1-1", got.Address)
	assert.Empty(t, got.PlaceName)
	assert.Equal(t, "100-0001", got.PostalCode)
}
