package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/models"
)

func newTestLocationProvider(t *testing.T, endpoint string, ttl, timeout time.Duration) LocationProvider {
	t.Helper()

	p, err := NewIPLocationProvider(config.ClientLocation{
		Endpoint:       endpoint,
		CacheTTL:       ttl,
		RequestTimeout: timeout,
	}, logger.Nop())
	require.NoError(t, err)
	return p
}

func locationCode(t *testing.T, err error) LocationErrorCode {
	t.Helper()

	var locErr *LocationError
	require.ErrorAs(t, err, &locErr)
	return locErr.Code
}

func TestCurrent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 35.68, "longitude": 139.76}`))
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	pos, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Position{Latitude: 35.68, Longitude: 139.76}, pos)
}

func TestCurrent_CachesWithinTTL(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 35.68, "longitude": 139.76}`))
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)
	ctx := context.Background()

	first, err := p.Current(ctx)
	require.NoError(t, err)
	second, err := p.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), requests.Load(), "second lookup must hit the cache")
}

func TestCurrent_CacheExpires(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 35.68, "longitude": 139.76}`))
	}))
	defer srv.Close()

	provider, err := NewIPLocationProvider(config.ClientLocation{
		Endpoint:       srv.URL,
		CacheTTL:       time.Minute,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	p := provider.(*ipLocationProvider)
	ctx := context.Background()

	_, err = p.Current(ctx)
	require.NoError(t, err)

	// Pretend a minute passed.
	p.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = p.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestCurrent_PermissionDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationPermissionDenied, locationCode(t, err))
}

func TestCurrent_ServerError_PositionUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationPositionUnavailable, locationCode(t, err))
}

func TestCurrent_EndpointReportsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": true, "reason": "RateLimited"}`))
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationPositionUnavailable, locationCode(t, err))
}

func TestCurrent_NoCoordinates_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationUnknown, locationCode(t, err))
}

func TestCurrent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, 50*time.Millisecond)

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationTimeout, locationCode(t, err))
}

func TestUnavailableLocationProvider(t *testing.T) {
	p := NewUnavailableLocationProvider()

	_, err := p.Current(context.Background())
	assert.Equal(t, LocationPositionUnavailable, locationCode(t, err))
}

func TestCurrent_ContextDeadline_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := newTestLocationProvider(t, srv.URL, time.Minute, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Current(ctx)
	require.Error(t, err)

	var locErr *LocationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, LocationTimeout, locErr.Code)
}
