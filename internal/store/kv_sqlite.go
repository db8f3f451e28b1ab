package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/migrations"
)

// sqliteKV is the SQLite-backed implementation of [KV]: a single kv table
// holding one JSON document per storage key.
type sqliteKV struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKV opens (creating if necessary) the SQLite database at
// cfg.DSN, verifies the connection, and runs pending schema migrations.
func NewSQLiteKV(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KV, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteKV").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqliteKV{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("build select query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Get").
			Str("key", key).
			Msg("failed to query kv row")
		return "", false, fmt.Errorf("failed to query kv row (key=%s): %w", key, err)
	}

	return value, true, nil
}

func (s *sqliteKV) Put(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertValueQuery(key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Put").
			Str("key", key).
			Msg("failed to execute upsert for kv row")
		return fmt.Errorf("failed to upsert kv row (key=%s): %w", key, err)
	}

	return nil
}
