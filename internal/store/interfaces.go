package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"pinbook/models"
)

// KV is the text-based key-value persistence substrate. It has no query
// capability beyond point lookups; every collection operation above it
// reads the full document, mutates it in memory, and writes it back.
//
// There is no cross-process locking: two processes mutating the same key
// race, last-write-wins at full-document granularity. This is an accepted
// limitation of the single-user, single-device design target.
type KV interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key, value string) error
}

// PlaceRepository is durable CRUD over the saved-places collection.
//
// List and Get never fail on malformed stored data; a value that cannot be
// parsed is logged and treated as an empty collection.
type PlaceRepository interface {
	// ListPlaces returns all place records in insertion order.
	ListPlaces(ctx context.Context) ([]models.Place, error)
	// GetPlace is a point lookup by linear scan. Returns ErrNotFound when
	// no record matches.
	GetPlace(ctx context.Context, id string) (models.Place, error)
	// SavePlace assigns a fresh identifier and creation timestamps,
	// appends the record, and returns it.
	SavePlace(ctx context.Context, place models.Place) (models.Place, error)
	// UpdatePlace merges the provided fields onto the stored record and
	// bumps UpdatedAt. Returns ErrNotFound when id is absent.
	UpdatePlace(ctx context.Context, id string, upd models.PlaceUpdate) (models.Place, error)
	// DeletePlace removes the matching record. Deleting a non-existent id
	// is not an error.
	DeletePlace(ctx context.Context, id string) error
}

// TabRepository is durable CRUD over the tab collection. The built-in set
// is seeded on first read; the "max 5 custom, built-ins immutable"
// invariants are enforced here, at the save/delete boundary, not inside
// the substrate.
type TabRepository interface {
	// ListTabs returns all tabs in display order, seeding the built-in
	// set on first read.
	ListTabs(ctx context.Context) ([]models.Tab, error)
	// GetTab returns the tab with the given id, or ErrNotFound.
	GetTab(ctx context.Context, id string) (models.Tab, error)
	// SaveTab creates a custom tab. Returns ErrTabLimit when five custom
	// tabs already exist; the stored collection is left untouched.
	SaveTab(ctx context.Context, name string) (models.Tab, error)
	// RenameTab renames a custom tab. Returns ErrBuiltinTab for built-ins
	// and ErrNotFound for unknown ids.
	RenameTab(ctx context.Context, id, name string) (models.Tab, error)
	// ReorderTab moves a tab to the given display position.
	ReorderTab(ctx context.Context, id string, order int) error
	// DeleteTab removes a custom tab; idempotent. Returns ErrBuiltinTab
	// when id names a built-in.
	DeleteTab(ctx context.Context, id string) error
}

// HistoryRepository is the append-only search history log, capped at
// models.MaxSearchHistory entries with FIFO eviction.
type HistoryRepository interface {
	// AddSearchHistory prepends an entry and truncates the collection to
	// the cap. Entries are never touched after insertion.
	AddSearchHistory(ctx context.Context, query, placeID string) error
	// ListSearchHistory returns entries newest first.
	ListSearchHistory(ctx context.Context) ([]models.SearchHistoryEntry, error)
}

// SettingsRepository persists the singleton settings record.
type SettingsRepository interface {
	// GetSettings returns the stored settings, or the default singleton
	// when absent or unparsable.
	GetSettings(ctx context.Context) (models.Settings, error)
	// SaveSettings overwrites the settings wholesale.
	SaveSettings(ctx context.Context, settings models.Settings) error
}
