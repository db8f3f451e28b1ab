package store

import (
	"context"
	"time"

	"pinbook/internal/logger"
	"pinbook/models"
)

type historyRepository struct {
	kv     KV
	key    string
	logger *logger.Logger
}

// NewHistoryRepository constructs the search history repository.
func NewHistoryRepository(kv KV, prefix string, logger *logger.Logger) HistoryRepository {
	return &historyRepository{kv: kv, key: prefix + keyHistory, logger: logger}
}

func (r *historyRepository) AddSearchHistory(ctx context.Context, query, placeID string) error {
	entries := loadCollection[models.SearchHistoryEntry](ctx, r.kv, r.key, r.logger)

	entry := models.SearchHistoryEntry{
		Query:   query,
		PlaceID: placeID,
		At:      time.Now().UTC(),
	}

	// Prepend, then truncate: oldest entries fall off the tail (FIFO).
	entries = append([]models.SearchHistoryEntry{entry}, entries...)
	if len(entries) > models.MaxSearchHistory {
		entries = entries[:models.MaxSearchHistory]
	}

	return storeCollection(ctx, r.kv, r.key, entries)
}

func (r *historyRepository) ListSearchHistory(ctx context.Context) ([]models.SearchHistoryEntry, error) {
	return loadCollection[models.SearchHistoryEntry](ctx, r.kv, r.key, r.logger), nil
}
