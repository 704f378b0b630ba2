// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"fmt"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
)

// ClientStorages groups the client-side storage primitives handed to the
// service layer. Currently it holds only the key/value store; additional
// repositories can be added here as the feature set grows.
type ClientStorages struct {
	// KeyValue is the SQLite-backed durable key/value store all engine
	// structures persist into.
	KeyValue KeyValueStore
}

// NewClientStorages initialises the client storage layer: opens the SQLite
// database named by cfg.DB.DSN (creating the file if needed), runs pending
// schema migrations, and wires a fresh KeyValueStore.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValue: NewKeyValueStore(db, logger),
	}, nil
}
