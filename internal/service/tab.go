package service

import (
	"context"
	"fmt"
	"strings"

	"pinbook/internal/logger"
	"pinbook/internal/store"
	"pinbook/models"
)

// TabService owns the tab use cases: listing for the tab bar, custom tab
// CRUD under the five-tab cap, and re-homing member places when a tab is
// deleted.
type TabService struct {
	tabs   store.TabRepository
	places store.PlaceRepository

	logger *logger.Logger
}

// NewTabService constructs a TabService.
func NewTabService(tabs store.TabRepository, places store.PlaceRepository, logger *logger.Logger) *TabService {
	return &TabService{tabs: tabs, places: places, logger: logger}
}

// List returns all tabs in display order, seeding the built-in set on the
// first call.
func (s *TabService) List(ctx context.Context) ([]models.Tab, error) {
	tabs, err := s.tabs.ListTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tabs: %w", err)
	}
	return tabs, nil
}

// Create adds a custom tab. The name is trimmed and must be non-empty.
// Returns store.ErrTabLimit when the custom tab cap is reached.
func (s *TabService) Create(ctx context.Context, name string) (models.Tab, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Tab{}, ErrTabNameRequired
	}

	tab, err := s.tabs.SaveTab(ctx, name)
	if err != nil {
		return models.Tab{}, fmt.Errorf("save tab: %w", err)
	}

	return tab, nil
}

// Rename changes a custom tab's name. Built-ins are immutable.
func (s *TabService) Rename(ctx context.Context, id, name string) (models.Tab, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Tab{}, ErrTabNameRequired
	}

	tab, err := s.tabs.RenameTab(ctx, id, name)
	if err != nil {
		return models.Tab{}, fmt.Errorf("rename tab: %w", err)
	}

	return tab, nil
}

// Reorder moves a tab to the given display position.
func (s *TabService) Reorder(ctx context.Context, id string, order int) error {
	if err := s.tabs.ReorderTab(ctx, id, order); err != nil {
		return fmt.Errorf("reorder tab: %w", err)
	}
	return nil
}

// Delete removes a custom tab and re-homes its member places to the
// reserved "other" tab, so no stored record is left pointing at a deleted
// tab on the happy path. Dangling references caused by interleaved writes
// are still repaired at read time by PlaceService.
func (s *TabService) Delete(ctx context.Context, id string) error {
	if err := s.tabs.DeleteTab(ctx, id); err != nil {
		return fmt.Errorf("delete tab: %w", err)
	}

	places, err := s.places.ListPlaces(ctx)
	if err != nil {
		return fmt.Errorf("list places: %w", err)
	}

	other := models.TabOther
	for _, place := range places {
		if place.TabID != id {
			continue
		}
		if _, err = s.places.UpdatePlace(ctx, place.ID, models.PlaceUpdate{TabID: &other}); err != nil {
			return fmt.Errorf("reassign place %s: %w", place.ID, err)
		}
	}

	return nil
}
