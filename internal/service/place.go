package service

import (
	"context"
	"fmt"
	"strings"

	"pinbook/internal/adapter"
	"pinbook/internal/logger"
	"pinbook/internal/store"
	"pinbook/models"
)

// PlaceService owns the saved-place use cases: validation, CRUD, dangling
// tab repair, and drafting a place from the current device location.
type PlaceService struct {
	places   store.PlaceRepository
	tabs     store.TabRepository
	location adapter.LocationProvider
	geocoder adapter.Geocoder

	logger *logger.Logger
}

// NewPlaceService constructs a PlaceService.
func NewPlaceService(
	places store.PlaceRepository,
	tabs store.TabRepository,
	location adapter.LocationProvider,
	geocoder adapter.Geocoder,
	logger *logger.Logger,
) *PlaceService {
	return &PlaceService{
		places:   places,
		tabs:     tabs,
		location: location,
		geocoder: geocoder,
		logger:   logger,
	}
}

// List returns all saved places in insertion order. Records whose TabID no
// longer resolves to an existing tab are re-pointed to the reserved "other"
// tab in the returned view; the stored records are left as written.
func (s *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	places, err := s.places.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	tabs, err := s.tabs.ListTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tabs: %w", err)
	}

	known := make(map[string]struct{}, len(tabs))
	for _, tab := range tabs {
		known[tab.ID] = struct{}{}
	}

	for i := range places {
		if _, ok := known[places[i].TabID]; !ok {
			s.logger.Debug().
				Str("func", "List").
				Str("place_id", places[i].ID).
				Str("tab_id", places[i].TabID).
				Msg("dangling tab reference, showing place under the other tab")
			places[i].TabID = models.TabOther
		}
	}

	return places, nil
}

// Get returns a single place by id, with the same dangling tab repair as
// List. Returns store.ErrNotFound when id is absent.
func (s *PlaceService) Get(ctx context.Context, id string) (models.Place, error) {
	place, err := s.places.GetPlace(ctx, id)
	if err != nil {
		return models.Place{}, fmt.Errorf("get place: %w", err)
	}

	if _, tabErr := s.tabs.GetTab(ctx, place.TabID); tabErr != nil {
		place.TabID = models.TabOther
	}

	return place, nil
}

// Create validates and stores a new place. The name is trimmed and must be
// non-empty; coordinates must be in range. An empty TabID lands the place
// in the "other" tab.
func (s *PlaceService) Create(ctx context.Context, place models.Place) (models.Place, error) {
	place.Name = strings.TrimSpace(place.Name)
	if place.Name == "" {
		return models.Place{}, ErrNameRequired
	}
	if err := validateCoordinates(place.Latitude, place.Longitude); err != nil {
		return models.Place{}, err
	}
	if place.TabID == "" {
		place.TabID = models.TabOther
	}

	created, err := s.places.SavePlace(ctx, place)
	if err != nil {
		return models.Place{}, fmt.Errorf("save place: %w", err)
	}

	return created, nil
}

// Update validates the changed fields and merges them onto the stored
// record. Nil fields are left untouched.
func (s *PlaceService) Update(ctx context.Context, id string, upd models.PlaceUpdate) (models.Place, error) {
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return models.Place{}, ErrNameRequired
		}
		upd.Name = &trimmed
	}
	if upd.Latitude != nil || upd.Longitude != nil {
		current, err := s.places.GetPlace(ctx, id)
		if err != nil {
			return models.Place{}, fmt.Errorf("get place: %w", err)
		}

		lat, lng := current.Latitude, current.Longitude
		if upd.Latitude != nil {
			lat = *upd.Latitude
		}
		if upd.Longitude != nil {
			lng = *upd.Longitude
		}
		if err = validateCoordinates(lat, lng); err != nil {
			return models.Place{}, err
		}
	}

	updated, err := s.places.UpdatePlace(ctx, id, upd)
	if err != nil {
		return models.Place{}, fmt.Errorf("update place: %w", err)
	}

	return updated, nil
}

// Delete removes a place; deleting an unknown id is not an error.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if err := s.places.DeletePlace(ctx, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}

// DraftFromCurrentLocation resolves the device position, reverse geocodes
// it, and returns an unsaved place draft prefilled with the result. The
// caller names it and picks a tab before Create.
func (s *PlaceService) DraftFromCurrentLocation(ctx context.Context) (models.Place, error) {
	pos, err := s.location.Current(ctx)
	if err != nil {
		return models.Place{}, fmt.Errorf("current location: %w", err)
	}

	geo := s.geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)

	return models.Place{
		Name:       geo.PlaceName,
		Address:    geo.Address,
		PostalCode: geo.PostalCode,
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		TabID:      models.TabOther,
	}, nil
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrCoordinates, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrCoordinates, lng)
	}
	return nil
}
