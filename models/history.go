package models

import "time"

// MaxSearchHistory caps the search history collection; insertion evicts the
// oldest entry (FIFO, entries are never touched after insertion).
const MaxSearchHistory = 20

// SearchHistoryEntry records one successful place resolution from search.
type SearchHistoryEntry struct {
	Query   string    `json:"query"`
	PlaceID string    `json:"place_id,omitempty"`
	At      time.Time `json:"at"`
}
