package service

import (
	"context"
	"fmt"

	"pinbook/internal/logger"
	"pinbook/internal/store"
	"pinbook/models"
)

// SettingsService reads and writes the settings singleton.
type SettingsService struct {
	settings store.SettingsRepository

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(settings store.SettingsRepository, logger *logger.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// SetTravelMode validates and persists the preferred travel mode.
func (s *SettingsService) SetTravelMode(ctx context.Context, mode models.TravelMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTravelMode, mode)
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	settings.TravelMode = mode
	if err = s.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
