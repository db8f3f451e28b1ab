package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"pinbook/internal/adapter"
	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/store"
	"pinbook/models"
)

// SearchService drives the incremental place search: debounced autocomplete
// with latest-request-wins semantics, suggestion resolution, and the search
// history log.
//
// Autocomplete responses can arrive out of order. Every Suggest call stamps
// a generation number; the caller keeps the number and checks Latest before
// rendering, so a slow response for an old query can never overwrite the
// suggestions for a newer one.
type SearchService struct {
	places   adapter.PlacesClient
	location adapter.LocationProvider
	history  store.HistoryRepository

	debounce   time.Duration
	generation atomic.Uint64

	logger *logger.Logger
}

// NewSearchService constructs a SearchService.
func NewSearchService(
	mapsCfg config.ClientMaps,
	places adapter.PlacesClient,
	location adapter.LocationProvider,
	history store.HistoryRepository,
	logger *logger.Logger,
) *SearchService {
	return &SearchService{
		places:   places,
		location: location,
		history:  history,
		debounce: mapsCfg.DebounceInterval,
		logger:   logger,
	}
}

// DebounceInterval is how long the caller should wait after the last
// keystroke before issuing a Suggest call.
func (s *SearchService) DebounceInterval() time.Duration {
	return s.debounce
}

// Latest reports whether gen is still the newest issued generation.
// Responses carrying an older generation must be discarded.
func (s *SearchService) Latest(gen uint64) bool {
	return s.generation.Load() == gen
}

// Suggest fetches autocomplete candidates for input, biased around the
// device position when available. The returned generation identifies this
// request for the staleness check.
func (s *SearchService) Suggest(ctx context.Context, input string) (uint64, []models.Suggestion, error) {
	gen := s.generation.Add(1)

	suggestions, err := s.places.Predictions(ctx, input, s.origin(ctx))
	if err != nil {
		return gen, nil, fmt.Errorf("predictions: %w", err)
	}

	return gen, suggestions, nil
}

// Resolve turns a picked suggestion into full place details and records the
// pick in the search history. A history write failure is logged, not
// surfaced; the user's search result matters more than the log entry.
func (s *SearchService) Resolve(ctx context.Context, suggestion models.Suggestion) (models.PlaceDetails, error) {
	details, err := s.places.Details(ctx, suggestion.PlaceID)
	if err != nil {
		return models.PlaceDetails{}, fmt.Errorf("place details: %w", err)
	}

	if err = s.history.AddSearchHistory(ctx, suggestion.Text, suggestion.PlaceID); err != nil {
		s.logger.Warn().
			Str("func", "Resolve").
			Err(err).
			Msg("failed to record search history entry")
	}

	return details, nil
}

// History returns recent search history entries, newest first.
func (s *SearchService) History(ctx context.Context) ([]models.SearchHistoryEntry, error) {
	entries, err := s.history.ListSearchHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return entries, nil
}

// origin returns the device position for search biasing, or nil when the
// position cannot be determined. Search works fine unbiased.
func (s *SearchService) origin(ctx context.Context) *models.Position {
	pos, err := s.location.Current(ctx)
	if err != nil {
		s.logger.Debug().
			Str("func", "origin").
			Err(err).
			Msg("no device position for search biasing")
		return nil
	}
	return &pos
}
