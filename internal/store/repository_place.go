package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pinbook/internal/logger"
	"pinbook/models"
)

type placeRepository struct {
	kv     KV
	key    string
	logger *logger.Logger
}

// NewPlaceRepository constructs the place collection repository on top of
// the given substrate. prefix namespaces the storage key.
func NewPlaceRepository(kv KV, prefix string, logger *logger.Logger) PlaceRepository {
	return &placeRepository{kv: kv, key: prefix + keyPlaces, logger: logger}
}

func (r *placeRepository) ListPlaces(ctx context.Context) ([]models.Place, error) {
	return loadCollection[models.Place](ctx, r.kv, r.key, r.logger), nil
}

func (r *placeRepository) GetPlace(ctx context.Context, id string) (models.Place, error) {
	for _, p := range loadCollection[models.Place](ctx, r.kv, r.key, r.logger) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Place{}, ErrNotFound
}

func (r *placeRepository) SavePlace(ctx context.Context, place models.Place) (models.Place, error) {
	now := time.Now().UTC()
	place.ID = uuid.NewString()
	place.Name = strings.TrimSpace(place.Name)
	place.CreatedAt = now
	place.UpdatedAt = now

	places := loadCollection[models.Place](ctx, r.kv, r.key, r.logger)
	places = append(places, place)

	if err := storeCollection(ctx, r.kv, r.key, places); err != nil {
		r.logger.Err(err).
			Str("func", "placeRepository.SavePlace").
			Str("id", place.ID).
			Msg("failed to persist new place")
		return models.Place{}, err
	}

	return place, nil
}

func (r *placeRepository) UpdatePlace(ctx context.Context, id string, upd models.PlaceUpdate) (models.Place, error) {
	places := loadCollection[models.Place](ctx, r.kv, r.key, r.logger)

	for i, p := range places {
		if p.ID != id {
			continue
		}

		applyPlaceUpdate(&p, upd)
		p.UpdatedAt = time.Now().UTC()
		places[i] = p

		if err := storeCollection(ctx, r.kv, r.key, places); err != nil {
			r.logger.Err(err).
				Str("func", "placeRepository.UpdatePlace").
				Str("id", id).
				Msg("failed to persist updated place")
			return models.Place{}, err
		}
		return p, nil
	}

	return models.Place{}, ErrNotFound
}

func (r *placeRepository) DeletePlace(ctx context.Context, id string) error {
	places := loadCollection[models.Place](ctx, r.kv, r.key, r.logger)

	kept := places[:0]
	removed := false
	for _, p := range places {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}

	// Idempotent: deleting a non-existent id is a no-op, not an error.
	if !removed {
		return nil
	}

	return storeCollection(ctx, r.kv, r.key, kept)
}

// applyPlaceUpdate merges the non-nil fields of upd onto p. Identity and
// timestamps are never touched here.
func applyPlaceUpdate(p *models.Place, upd models.PlaceUpdate) {
	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Note != nil {
		p.Note = *upd.Note
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.PostalCode != nil {
		p.PostalCode = *upd.PostalCode
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.Latitude != nil {
		p.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		p.Longitude = *upd.Longitude
	}
	if upd.TabID != nil {
		p.TabID = *upd.TabID
	}
}
