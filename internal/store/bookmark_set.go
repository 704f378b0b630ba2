// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tbalakin/dirbook/internal/logger"
)

// BookmarkSet is the durable set of currently bookmarked item ids for one
// identity. Every mutating call persists the new snapshot before returning
// (write-through), so a crash immediately after a UI action never loses the
// user's intent.
//
// The set keeps its own read lock so that Contains stays an O(1) in-memory
// check; cross-structure serialization during sync is the engine's job.
type BookmarkSet struct {
	kv     KeyValueStore
	key    string
	logger *logger.Logger

	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewBookmarkSet loads the persisted snapshot for the given identity (an
// absent snapshot yields an empty set) and returns a ready BookmarkSet.
func NewBookmarkSet(ctx context.Context, kv KeyValueStore, identity string, logger *logger.Logger) (*BookmarkSet, error) {
	s := &BookmarkSet{
		kv:     kv,
		key:    BookmarkSetKey(identity),
		logger: logger,
		ids:    make(map[string]struct{}),
	}

	raw, err := kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load bookmark set %q: %w", s.key, err)
	}

	var stored []string
	if err = json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: bookmark set %q: %v", ErrCorruptSnapshot, s.key, err)
	}
	for _, id := range stored {
		s.ids[id] = struct{}{}
	}

	return s, nil
}

// Contains reports whether id is currently bookmarked. No I/O.
func (s *BookmarkSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[id]
	return ok
}

// Len returns the current number of bookmarks. No I/O.
func (s *BookmarkSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// Add inserts id and persists the new snapshot. Returns false without
// touching storage when id is already present.
func (s *BookmarkSet) Add(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return false, nil
	}

	s.ids[id] = struct{}{}
	if err := s.persist(ctx); err != nil {
		delete(s.ids, id)
		return false, err
	}

	return true, nil
}

// Remove deletes id and persists the new snapshot. Returns false without
// touching storage when id is absent.
func (s *BookmarkSet) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return false, nil
	}

	delete(s.ids, id)
	if err := s.persist(ctx); err != nil {
		s.ids[id] = struct{}{}
		return false, err
	}

	return true, nil
}

// Replace atomically substitutes the full contents with ids and persists the
// result. Used only to apply the outcome of a successful merge+push.
func (s *BookmarkSet) Replace(ctx context.Context, ids map[string]struct{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.ids
	next := make(map[string]struct{}, len(ids))
	for id := range ids {
		next[id] = struct{}{}
	}

	s.ids = next
	if err := s.persist(ctx); err != nil {
		s.ids = prev
		return err
	}

	return nil
}

// Snapshot returns an independent copy of the current membership, safe to
// mutate and compare.
func (s *BookmarkSet) Snapshot() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}

// persist writes the current membership as a sorted JSON array. Sorting
// keeps snapshots deterministic, which makes before/after comparisons in
// sync failure paths byte-exact. Caller holds s.mu.
func (s *BookmarkSet) persist(ctx context.Context) error {
	stored := make([]string, 0, len(s.ids))
	for id := range s.ids {
		stored = append(stored, id)
	}
	sort.Strings(stored)

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode bookmark set %q: %w", s.key, err)
	}

	if err = s.kv.Set(ctx, s.key, payload); err != nil {
		s.logger.Err(err).
			Str("func", "BookmarkSet.persist").
			Str("key", s.key).
			Msg("failed to persist bookmark snapshot")
		return fmt.Errorf("persist bookmark set %q: %w", s.key, err)
	}

	return nil
}
