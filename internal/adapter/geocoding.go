package adapter

import (
	"context"
	"fmt"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/utils"
	"pinbook/models"
)

type googleGeocoder struct {
	client   *utils.HTTPClient
	apiKey   string
	language string

	logger *logger.Logger
}

// NewGoogleGeocoder constructs a [Geocoder] backed by the Google Geocoding
// API. The adapter is usable without an API key: every lookup then resolves
// to the coordinate fallback, so the rest of the app never has to special
// case a keyless install.
func NewGoogleGeocoder(mapsCfg config.ClientMaps, logger *logger.Logger) (Geocoder, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(mapsCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid maps base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(mapsCfg.RequestTimeout)

	return &googleGeocoder{
		client:   client,
		apiKey:   mapsCfg.APIKey,
		language: mapsCfg.Language,
		logger:   logger,
	}, nil
}

type geoAddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geoResult struct {
	FormattedAddress  string                `json:"formatted_address"`
	Types             []string              `json:"types"`
	AddressComponents []geoAddressComponent `json:"address_components"`
}

type geocodeResponse struct {
	Status  string      `json:"status"`
	Results []geoResult `json:"results"`
}

// ReverseGeocode implements [Geocoder]. It GETs /maps/api/geocode/json and
// maps the first result's formatted address through [NormalizeAddress].
// The place name is taken from the first result tagged as a point of
// interest, establishment or premise; the postal code from the first
// result's postal_code component. Any failure degrades to a plain
// "lat, lng" address.
func (g *googleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) models.GeocodeResult {
	log := g.logger.With().Str("func", "ReverseGeocode").Logger()
	fallback := models.GeocodeResult{Address: FormatCoordinates(lat, lng)}

	if g.apiKey == "" {
		log.Debug().Msg("no maps api key configured, returning coordinate fallback")
		return fallback
	}

	var out geocodeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latlng":   FormatCoordinates(lat, lng),
			"language": g.language,
			"key":      g.apiKey,
		}).
		SetResult(&out).
		Get("/maps/api/geocode/json")
	if err != nil {
		log.Warn().Err(err).Msg("reverse geocode request failed")
		return fallback
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Msg("reverse geocode returned an error status")
		return fallback
	}
	if out.Status != "OK" || len(out.Results) == 0 {
		log.Debug().Str("status", out.Status).Msg("reverse geocode returned no results")
		return fallback
	}

	result := models.GeocodeResult{
		Address: NormalizeAddress(out.Results[0].FormattedAddress),
	}
	if result.Address == "" {
		result.Address = fallback.Address
	}

	for _, r := range out.Results {
		if !hasAnyType(r.Types, "point_of_interest", "establishment", "premise") {
			continue
		}
		if len(r.AddressComponents) > 0 {
			result.PlaceName = r.AddressComponents[0].LongName
		}
		break
	}

	for _, c := range out.Results[0].AddressComponents {
		if hasAnyType(c.Types, "postal_code") {
			result.PostalCode = c.LongName
			break
		}
	}

	return result
}

func hasAnyType(types []string, wanted ...string) bool {
	for _, t := range types {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
