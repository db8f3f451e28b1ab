package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

func newTestFileKV(t *testing.T) KV {
	t.Helper()
	kv, err := NewFileKV(config.ClientStorage{Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	return kv
}

func TestFileKV_GetMissingKey(t *testing.T) {
	kv := newTestFileKV(t)

	_, ok, err := kv.Get(context.Background(), "pinbook:places")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_PutGetRoundTrip(t *testing.T) {
	kv := newTestFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "pinbook:places", `[{"id":"1"}]`))

	got, ok, err := kv.Get(ctx, "pinbook:places")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestFileKV_PutOverwritesWholeValue(t *testing.T) {
	kv := newTestFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "pinbook:settings", `{"travel_mode":"driving"}`))
	require.NoError(t, kv.Put(ctx, "pinbook:settings", `{"travel_mode":"walking"}`))

	got, ok, err := kv.Get(ctx, "pinbook:settings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"travel_mode":"walking"}`, got)
}

func TestFileKV_KeysAreIsolated(t *testing.T) {
	kv := newTestFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "pinbook:places", `[]`))

	_, ok, err := kv.Get(ctx, "pinbook:tabs")
	require.NoError(t, err)
	assert.False(t, ok)
}
