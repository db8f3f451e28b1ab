package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectValueQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectValueQuery("pinbook:places")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "pinbook:places", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "value")
	require.Contains(t, q, "from kv")
	require.Contains(t, q, "where")
	require.Contains(t, q, "key")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
}

func Test_buildUpsertValueQuery_SQLContainsParts(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := buildUpsertValueQuery("pinbook:settings", `{"travel_mode":"walking"}`, now)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "pinbook:settings", args[0])
	require.Equal(t, `{"travel_mode":"walking"}`, args[1])
	require.Equal(t, now, args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into kv")
	require.Contains(t, q, "on conflict(key)")
	require.Contains(t, q, "do update set")
	require.Contains(t, q, "excluded.value")
	require.Contains(t, q, "updated_at")
}
