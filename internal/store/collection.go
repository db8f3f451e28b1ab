package store

import (
	"context"
	"encoding/json"
	"fmt"

	"pinbook/internal/logger"
)

// Storage keys, one logical namespace per entity. The configured prefix is
// prepended to each.
const (
	keyPlaces   = "places"
	keyTabs     = "tabs"
	keyHistory  = "search_history"
	keySettings = "settings"
)

// loadCollection reads and decodes the JSON collection stored under key.
//
// Fail-open policy: a missing key, a substrate read error, or a value that
// does not parse all yield an empty collection. Corrupt data is logged for
// diagnostics and never surfaced to callers; availability wins over strict
// consistency for a single-user local tool.
func loadCollection[T any](ctx context.Context, kv KV, key string, log *logger.Logger) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Err(err).
			Str("func", "loadCollection").
			Str("key", key).
			Msg("substrate read failed, treating collection as empty")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var items []T
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		log.Err(err).
			Str("func", "loadCollection").
			Str("key", key).
			Msg("stored collection is corrupt, treating as empty")
		return nil
	}

	return items
}

// storeCollection encodes items and overwrites the value under key. There
// is no partial-write mode; the whole collection is always rewritten.
func storeCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection (key=%s): %w", key, err)
	}

	if err = kv.Put(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("persist collection (key=%s): %w", key, err)
	}

	return nil
}
