package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/utils"
	"pinbook/models"
)

type googlePlaces struct {
	client   *utils.HTTPClient
	apiKey   string
	country  string
	language string

	mu           sync.Mutex
	sessionToken string

	logger *logger.Logger
}

// NewGooglePlaces constructs a [PlacesClient] backed by the Google Places
// autocomplete and details endpoints. Results are restricted to the
// configured country and localized to the configured language.
func NewGooglePlaces(mapsCfg config.ClientMaps, logger *logger.Logger) (PlacesClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(mapsCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid maps base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(mapsCfg.RequestTimeout)

	return &googlePlaces{
		client:   client,
		apiKey:   mapsCfg.APIKey,
		country:  mapsCfg.Country,
		language: mapsCfg.Language,
		logger:   logger,
	}, nil
}

// token returns the current session token, creating one lazily. The same
// token must cover all autocomplete calls leading up to one details call.
func (p *googlePlaces) token() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sessionToken == "" {
		p.sessionToken = uuid.NewString()
	}
	return p.sessionToken
}

// rotateToken discards the current session token so the next autocomplete
// call starts a fresh billing session. Called after a successful details
// lookup, which terminates the session upstream.
func (p *googlePlaces) rotateToken() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sessionToken = ""
}

type placePrediction struct {
	Description          string `json:"description"`
	PlaceID              string `json:"place_id"`
	StructuredFormatting struct {
		MainText      string `json:"main_text"`
		SecondaryText string `json:"secondary_text"`
	} `json:"structured_formatting"`
}

type autocompleteResponse struct {
	Status      string            `json:"status"`
	Predictions []placePrediction `json:"predictions"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Predictions implements [PlacesClient]. It GETs
// /maps/api/place/autocomplete/json within the current search session.
func (p *googlePlaces) Predictions(ctx context.Context, input string, origin *models.Position) ([]models.Suggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" || p.apiKey == "" {
		return []models.Suggestion{}, nil
	}

	params := map[string]string{
		"input":        input,
		"key":          p.apiKey,
		"language":     p.language,
		"components":   "country:" + p.country,
		"sessiontoken": p.token(),
	}
	if origin != nil {
		params["location"] = locationParam(origin.Latitude, origin.Longitude)
	}

	var out autocompleteResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/maps/api/place/autocomplete/json")
	if err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	switch out.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []models.Suggestion{}, nil
	default:
		return nil, fmt.Errorf("autocomplete status %s", out.Status)
	}

	suggestions := make([]models.Suggestion, 0, len(out.Predictions))
	for _, pred := range out.Predictions {
		text := pred.StructuredFormatting.MainText
		if text == "" {
			text = pred.Description
		}
		suggestions = append(suggestions, models.Suggestion{
			Text:        text,
			Description: pred.StructuredFormatting.SecondaryText,
			PlaceID:     pred.PlaceID,
		})
	}

	return suggestions, nil
}

// Details implements [PlacesClient]. It GETs /maps/api/place/details/json
// and rotates the session token on success.
func (p *googlePlaces) Details(ctx context.Context, placeID string) (models.PlaceDetails, error) {
	var out detailsResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id":     placeID,
			"key":          p.apiKey,
			"language":     p.language,
			"fields":       "name,formatted_address,geometry",
			"sessiontoken": p.token(),
		}).
		SetResult(&out).
		Get("/maps/api/place/details/json")
	if err != nil {
		return models.PlaceDetails{}, fmt.Errorf("place details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaceDetails{}, err
	}

	switch out.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS":
		return models.PlaceDetails{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, placeID)
	default:
		return models.PlaceDetails{}, fmt.Errorf("place details status %s", out.Status)
	}

	p.rotateToken()

	return models.PlaceDetails{
		Name:      out.Result.Name,
		Address:   NormalizeAddress(out.Result.FormattedAddress),
		Latitude:  out.Result.Geometry.Location.Lat,
		Longitude: out.Result.Geometry.Location.Lng,
	}, nil
}

func locationParam(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
