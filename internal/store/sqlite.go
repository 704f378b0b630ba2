// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/migrations"
)

// DB wraps the client SQLite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the local SQLite database
// file named by cfg.DSN and verifies the connection with a ping.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies pending schema migrations to the local database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueStore returns a KeyValueStore backed by the keyspace table of
// the given database. Writes are atomic per key; SQLite guarantees the
// durability the engine's write-through contract needs.
func NewKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{DB: db, logger: logger}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := s.DB.QueryRowContext(ctx, getValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to scan keyspace row")
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.DB.ExecContext(ctx, upsertValue, key, value); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Msg("failed to execute upsert for keyspace")
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, deleteValue, key); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Delete").
			Str("key", key).
			Msg("failed to execute delete for keyspace")
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.DB.DB.Close()
}
