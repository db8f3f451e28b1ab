package service

import (
	"context"
	"fmt"
	"strconv"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/store"
	"pinbook/models"
)

// BuildNavigationLink renders a directions deep link of the form
// <base>?destination=<lat>,<lng>&travelmode=<mode>. Coordinates are
// rendered with the shortest exact decimal representation, so the link
// round-trips the stored float64 values. Pure; range checking happens at
// place validation, not here.
func BuildNavigationLink(baseURL string, lat, lng float64, mode models.TravelMode) string {
	return fmt.Sprintf("%s?destination=%s,%s&travelmode=%s",
		baseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		mode,
	)
}

// NavigationService builds directions deep links for saved places using the
// persisted travel mode.
type NavigationService struct {
	settings store.SettingsRepository
	baseURL  string

	logger *logger.Logger
}

// NewNavigationService constructs a NavigationService over the settings
// repository and the configured directions base URL.
func NewNavigationService(navigationCfg config.ClientNavigation, settings store.SettingsRepository, logger *logger.Logger) *NavigationService {
	return &NavigationService{
		settings: settings,
		baseURL:  navigationCfg.BaseURL,
		logger:   logger,
	}
}

// LinkTo returns the navigation deep link for place, using the travel mode
// from settings.
func (s *NavigationService) LinkTo(ctx context.Context, place models.Place) (string, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("get settings: %w", err)
	}

	return BuildNavigationLink(s.baseURL, place.Latitude, place.Longitude, settings.TravelMode), nil
}
