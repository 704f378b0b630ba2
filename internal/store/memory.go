// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKeyValueStore returns a KeyValueStore that lives entirely in
// memory. Used in tests and as the backing store for throwaway sessions
// where durability is not required.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{values: make(map[string][]byte)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *memoryKeyValueStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memoryKeyValueStore) Close() error {
	return nil
}
