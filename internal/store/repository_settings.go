package store

import (
	"context"
	"encoding/json"
	"fmt"

	"pinbook/internal/logger"
	"pinbook/models"
)

type settingsRepository struct {
	kv     KV
	key    string
	logger *logger.Logger
}

// NewSettingsRepository constructs the settings singleton repository.
func NewSettingsRepository(kv KV, prefix string, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{kv: kv, key: prefix + keySettings, logger: logger}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (models.Settings, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.GetSettings").
			Msg("substrate read failed, returning defaults")
		return models.DefaultSettings(), nil
	}
	if !ok || raw == "" {
		return models.DefaultSettings(), nil
	}

	var settings models.Settings
	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.GetSettings").
			Msg("stored settings are corrupt, returning defaults")
		return models.DefaultSettings(), nil
	}
	if !settings.TravelMode.Valid() {
		return models.DefaultSettings(), nil
	}

	return settings, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = r.kv.Put(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}

	return nil
}
