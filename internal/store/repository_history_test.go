package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/internal/logger"
	"pinbook/models"
)

func newTestHistoryRepo(t *testing.T) HistoryRepository {
	t.Helper()
	return NewHistoryRepository(newMemKV(), "pinbook:", logger.Nop())
}

func TestHistoryRepository_AddAndList_NewestFirst(t *testing.T) {
	repo := newTestHistoryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddSearchHistory(ctx, "Tokyo Tower", "p1"))
	require.NoError(t, repo.AddSearchHistory(ctx, "Osaka Castle", "p2"))

	entries, err := repo.ListSearchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Osaka Castle", entries[0].Query)
	assert.Equal(t, "Tokyo Tower", entries[1].Query)
}

func TestHistoryRepository_CapWithFIFOEviction(t *testing.T) {
	repo := newTestHistoryRepo(t)
	ctx := context.Background()

	for i := 0; i < models.MaxSearchHistory+5; i++ {
		require.NoError(t, repo.AddSearchHistory(ctx, fmt.Sprintf("query-%d", i), ""))
	}

	entries, err := repo.ListSearchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, models.MaxSearchHistory)

	// Newest entry kept at the head, oldest five evicted from the tail.
	assert.Equal(t, fmt.Sprintf("query-%d", models.MaxSearchHistory+4), entries[0].Query)
	assert.Equal(t, "query-5", entries[len(entries)-1].Query)
}

func TestHistoryRepository_EmptyStore(t *testing.T) {
	repo := newTestHistoryRepo(t)

	entries, err := repo.ListSearchHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
