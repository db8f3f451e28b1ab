package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// buildSelectValueQuery builds the point lookup for one kv row. SQLite uses
// `?` placeholders, squirrel's default.
func buildSelectValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertValueQuery builds the full-overwrite write for one kv row.
func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
