// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

// Package store implements the client-side persistence layer: a durable
// key/value store backed by a local SQLite database, and the two structures
// the sync engine keeps in it — the bookmark set and the pending operation
// log.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_value_store_mock.go -package=mock

// KeyValueStore is durable key -> bytes storage with atomic per-key writes.
// It is the only persistence primitive the sync engine relies on; everything
// above it (bookmark snapshots, the pending log, session data) is serialized
// into opaque blobs.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying database handle.
	Close() error
}
