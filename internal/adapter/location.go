package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/utils"
	"pinbook/models"
)

type ipLocationProvider struct {
	client   *utils.HTTPClient
	endpoint string
	ttl      time.Duration

	mu       sync.Mutex
	cached   models.Position
	cachedAt time.Time

	logger *logger.Logger
	now    func() time.Time
}

// NewIPLocationProvider constructs a [LocationProvider] that resolves the
// device position from an IP geolocation endpoint. A successful reading is
// cached for the configured TTL so rapid consecutive lookups (list refresh,
// search bias, form prefill) reuse one network call.
func NewIPLocationProvider(locationCfg config.ClientLocation, logger *logger.Logger) (LocationProvider, error) {
	if locationCfg.Endpoint == "" {
		return nil, fmt.Errorf("empty location endpoint")
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(locationCfg.RequestTimeout)

	return &ipLocationProvider{
		client:   client,
		endpoint: locationCfg.Endpoint,
		ttl:      locationCfg.CacheTTL,
		logger:   logger,
		now:      time.Now,
	}, nil
}

type ipLocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     bool    `json:"error"`
	Reason    string  `json:"reason"`
}

// Current implements [LocationProvider]. Every failure is returned as a
// [*LocationError] carrying one of the four taxonomy codes.
func (p *ipLocationProvider) Current(ctx context.Context) (models.Position, error) {
	p.mu.Lock()
	if !p.cachedAt.IsZero() && p.now().Sub(p.cachedAt) < p.ttl {
		pos := p.cached
		p.mu.Unlock()
		return pos, nil
	}
	p.mu.Unlock()

	var out ipLocationResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(p.endpoint)
	if err != nil {
		return models.Position{}, p.mapTransportError(err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return models.Position{}, &LocationError{Code: LocationPermissionDenied, Err: mapHTTPError(resp)}
	case resp.StatusCode() >= http.StatusMultipleChoices:
		return models.Position{}, &LocationError{Code: LocationPositionUnavailable, Err: mapHTTPError(resp)}
	}

	if out.Error {
		return models.Position{}, &LocationError{
			Code: LocationPositionUnavailable,
			Err:  fmt.Errorf("endpoint error: %s", out.Reason),
		}
	}
	if out.Latitude == 0 && out.Longitude == 0 {
		return models.Position{}, &LocationError{
			Code: LocationUnknown,
			Err:  fmt.Errorf("endpoint returned no coordinates"),
		}
	}

	pos := models.Position{Latitude: out.Latitude, Longitude: out.Longitude}

	p.mu.Lock()
	p.cached = pos
	p.cachedAt = p.now()
	p.mu.Unlock()

	return pos, nil
}

// unavailableLocationProvider is the provider used on platforms without a
// location capability.
type unavailableLocationProvider struct{}

// NewUnavailableLocationProvider returns a [LocationProvider] whose lookups
// always fail with the position-unavailable code.
func NewUnavailableLocationProvider() LocationProvider {
	return unavailableLocationProvider{}
}

func (unavailableLocationProvider) Current(context.Context) (models.Position, error) {
	return models.Position{}, &LocationError{
		Code: LocationPositionUnavailable,
		Err:  errors.New("no location capability on this platform"),
	}
}

func (p *ipLocationProvider) mapTransportError(err error) error {
	var timeoutErr interface{ Timeout() bool }

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &LocationError{Code: LocationTimeout, Err: err}
	case errors.As(err, &timeoutErr) && timeoutErr.Timeout():
		return &LocationError{Code: LocationTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return &LocationError{Code: LocationUnknown, Err: err}
	default:
		return &LocationError{Code: LocationPositionUnavailable, Err: err}
	}
}
