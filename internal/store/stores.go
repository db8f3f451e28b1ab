package store

import (
	"context"
	"fmt"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	Places   PlaceRepository
	Tabs     TabRepository
	History  HistoryRepository
	Settings SettingsRepository
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the key-value substrate selected by cfg.Backend (a SQLite kv
//     table, migrated via goose, or a directory of JSON documents).
//  2. Constructs the four entity repositories over the shared substrate,
//     namespaced by cfg.KeyPrefix.
//
// Returns an error if the substrate cannot be opened or migrated.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	kv, err := newKV(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open key-value substrate: %w", err)
	}

	return &ClientStorages{
		Places:   NewPlaceRepository(kv, cfg.KeyPrefix, log),
		Tabs:     NewTabRepository(kv, cfg.KeyPrefix, log),
		History:  NewHistoryRepository(kv, cfg.KeyPrefix, log),
		Settings: NewSettingsRepository(kv, cfg.KeyPrefix, log),
	}, nil
}

func newKV(cfg config.ClientStorage, log *logger.Logger) (KV, error) {
	switch cfg.Backend {
	case "file":
		return NewFileKV(cfg, log)
	default:
		return NewSQLiteKV(context.Background(), cfg, log)
	}
}
