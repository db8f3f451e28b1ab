package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pinbook/models"
)

// SortPolicy names an ordering of the place list.
type SortPolicy string

const (
	// SortCreatedDesc orders newest first. This is the default.
	SortCreatedDesc SortPolicy = "created-desc"
	// SortCreatedAsc orders oldest first.
	SortCreatedAsc SortPolicy = "created-asc"
	// SortNameAsc orders by name with Japanese collation.
	SortNameAsc SortPolicy = "name-asc"
)

// NextSortPolicy cycles through the policies in display order. Used by the
// list screen's sort toggle.
func NextSortPolicy(policy SortPolicy) SortPolicy {
	switch policy {
	case SortCreatedDesc:
		return SortCreatedAsc
	case SortCreatedAsc:
		return SortNameAsc
	default:
		return SortCreatedDesc
	}
}

// FilterByTab returns the places belonging to the given tab, preserving
// relative order. The models.TabAll sentinel is the identity filter.
func FilterByTab(places []models.Place, tabID string) []models.Place {
	if tabID == models.TabAll {
		return places
	}

	filtered := make([]models.Place, 0, len(places))
	for _, place := range places {
		if place.TabID == tabID {
			filtered = append(filtered, place)
		}
	}

	return filtered
}

// SortPlaces returns a new slice ordered by the given policy; the input is
// left untouched. Sorting is stable, so records comparing equal keep their
// stored relative order, and applying the same policy twice is a no-op.
// Unknown policies fall back to SortCreatedDesc.
func SortPlaces(places []models.Place, policy SortPolicy) []models.Place {
	sorted := make([]models.Place, len(places))
	copy(sorted, places)

	switch policy {
	case SortNameAsc:
		// The collator carries an internal buffer, so it cannot be shared
		// across goroutines; one per call.
		c := collate.New(language.Japanese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortCreatedAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}
