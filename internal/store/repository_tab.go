package store

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pinbook/internal/logger"
	"pinbook/models"
)

type tabRepository struct {
	kv     KV
	key    string
	logger *logger.Logger
}

// NewTabRepository constructs the tab collection repository. The built-in
// tab set is seeded lazily on the first read.
func NewTabRepository(kv KV, prefix string, logger *logger.Logger) TabRepository {
	return &tabRepository{kv: kv, key: prefix + keyTabs, logger: logger}
}

func (r *tabRepository) ListTabs(ctx context.Context) ([]models.Tab, error) {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Order < tabs[j].Order })
	return tabs, nil
}

func (r *tabRepository) GetTab(ctx context.Context, id string) (models.Tab, error) {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return models.Tab{}, err
	}

	for _, t := range tabs {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Tab{}, ErrNotFound
}

func (r *tabRepository) SaveTab(ctx context.Context, name string) (models.Tab, error) {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return models.Tab{}, err
	}

	custom := 0
	maxOrder := -1
	for _, t := range tabs {
		if t.Custom {
			custom++
		}
		if t.Order > maxOrder {
			maxOrder = t.Order
		}
	}
	if custom >= models.MaxCustomTabs {
		return models.Tab{}, ErrTabLimit
	}

	tab := models.Tab{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Custom: true,
		Order:  maxOrder + 1,
	}
	tabs = append(tabs, tab)

	if err = storeCollection(ctx, r.kv, r.key, tabs); err != nil {
		r.logger.Err(err).
			Str("func", "tabRepository.SaveTab").
			Str("id", tab.ID).
			Msg("failed to persist new tab")
		return models.Tab{}, err
	}

	return tab, nil
}

func (r *tabRepository) RenameTab(ctx context.Context, id, name string) (models.Tab, error) {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return models.Tab{}, err
	}

	for i, t := range tabs {
		if t.ID != id {
			continue
		}
		if !t.Custom {
			return models.Tab{}, ErrBuiltinTab
		}

		t.Name = strings.TrimSpace(name)
		tabs[i] = t

		if err = storeCollection(ctx, r.kv, r.key, tabs); err != nil {
			return models.Tab{}, err
		}
		return t, nil
	}

	return models.Tab{}, ErrNotFound
}

func (r *tabRepository) ReorderTab(ctx context.Context, id string, order int) error {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return err
	}

	for i, t := range tabs {
		if t.ID != id {
			continue
		}

		tabs[i].Order = order
		return storeCollection(ctx, r.kv, r.key, tabs)
	}

	return ErrNotFound
}

func (r *tabRepository) DeleteTab(ctx context.Context, id string) error {
	tabs, err := r.loadSeeded(ctx)
	if err != nil {
		return err
	}

	kept := tabs[:0]
	removed := false
	for _, t := range tabs {
		if t.ID == id {
			if !t.Custom {
				return ErrBuiltinTab
			}
			removed = true
			continue
		}
		kept = append(kept, t)
	}

	if !removed {
		return nil
	}

	return storeCollection(ctx, r.kv, r.key, kept)
}

// loadSeeded returns the stored tab collection, writing the built-in set
// first when nothing is stored yet (or the stored value was corrupt, which
// the fail-open read reports as empty).
func (r *tabRepository) loadSeeded(ctx context.Context) ([]models.Tab, error) {
	tabs := loadCollection[models.Tab](ctx, r.kv, r.key, r.logger)
	if len(tabs) > 0 {
		return tabs, nil
	}

	tabs = models.BuiltinTabs()
	if err := storeCollection(ctx, r.kv, r.key, tabs); err != nil {
		r.logger.Err(err).
			Str("func", "tabRepository.loadSeeded").
			Msg("failed to seed built-in tabs")
		return nil, err
	}

	return tabs, nil
}
