// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tbalakin/dirbook/internal/adapter"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/store"
	"github.com/tbalakin/dirbook/models"
)

// syncEngine coordinates the durable bookmark set, the pending operation log
// and the remote store for one session identity. All mutations and syncs are
// serialized by mu; syncGate additionally rejects overlapping Sync calls so a
// slow reconciliation never stacks up behind user actions.
type syncEngine struct {
	bookmarks *store.BookmarkSet
	pending   *store.PendingOperationLog
	kv        store.KeyValueStore
	adapter   adapter.ServerAdapter
	auth      AuthProvider
	policy    TierPolicy
	identity  string
	logger    *logger.Logger

	mu       sync.Mutex
	syncGate atomic.Bool

	statusMu sync.RWMutex
	status   models.SyncStatus
	lastErr  error
}

// NewBookmarkEngine loads the persisted bookmark set and pending log of the
// given identity and returns a ready engine. The last successful sync time is
// restored from storage when present.
func NewBookmarkEngine(
	ctx context.Context,
	kv store.KeyValueStore,
	serverAdapter adapter.ServerAdapter,
	auth AuthProvider,
	policy TierPolicy,
	identity string,
	logger *logger.Logger,
) (BookmarkEngine, error) {
	bookmarks, err := store.NewBookmarkSet(ctx, kv, identity, logger)
	if err != nil {
		return nil, err
	}
	pending, err := store.NewPendingOperationLog(ctx, kv, identity, logger)
	if err != nil {
		return nil, err
	}

	e := &syncEngine{
		bookmarks: bookmarks,
		pending:   pending,
		kv:        kv,
		adapter:   serverAdapter,
		auth:      auth,
		policy:    policy,
		identity:  identity,
		logger:    logger,
		status:    models.SyncStatus{Phase: models.SyncIdle},
	}
	e.restoreLastSyncTime(ctx)

	return e, nil
}

// IsBookmarked implements [BookmarkEngine].
func (e *syncEngine) IsBookmarked(id string) bool {
	return e.bookmarks.Contains(id)
}

// Add implements [BookmarkEngine]. The local write is durable before the
// remote attempt; remote failure demotes the outcome to queued, never to an
// error.
func (e *syncEngine) Add(ctx context.Context, id string) (models.MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bookmarks.Contains(id) {
		return models.MutationResult{Outcome: models.MutationRejected}, nil
	}
	if limit := e.policy.MaxBookmarks(); limit > 0 && e.bookmarks.Len() >= limit {
		return models.MutationResult{Outcome: models.MutationRejected}, ErrLimitExceeded
	}

	changed, err := e.bookmarks.Add(ctx, id)
	if err != nil {
		return models.MutationResult{Outcome: models.MutationRejected}, err
	}

	outcome, err := e.propagate(ctx, models.OpAdd, id)
	if err != nil {
		return models.MutationResult{Outcome: models.MutationRejected}, err
	}

	return models.MutationResult{Outcome: outcome, Changed: changed}, nil
}

// Remove implements [BookmarkEngine].
func (e *syncEngine) Remove(ctx context.Context, id string) (models.MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.bookmarks.Contains(id) {
		return models.MutationResult{Outcome: models.MutationRejected}, nil
	}

	changed, err := e.bookmarks.Remove(ctx, id)
	if err != nil {
		return models.MutationResult{Outcome: models.MutationRejected}, err
	}

	outcome, err := e.propagate(ctx, models.OpRemove, id)
	if err != nil {
		return models.MutationResult{Outcome: models.MutationRejected}, err
	}

	return models.MutationResult{Outcome: outcome, Changed: changed}, nil
}

// Toggle implements [BookmarkEngine].
func (e *syncEngine) Toggle(ctx context.Context, id string) (models.MutationResult, error) {
	if e.bookmarks.Contains(id) {
		return e.Remove(ctx, id)
	}
	return e.Add(ctx, id)
}

// propagate pushes a single confirmed local mutation to the remote store, or
// enqueues it when the session is offline or unauthenticated. Caller holds
// e.mu.
func (e *syncEngine) propagate(ctx context.Context, kind models.OperationKind, id string) (models.MutationOutcome, error) {
	if !e.auth.IsAuthenticated() {
		if err := e.pending.Enqueue(ctx, kind, id); err != nil {
			return models.MutationRejected, err
		}
		return models.MutationAppliedAndQueued, nil
	}

	var remoteErr error
	switch kind {
	case models.OpAdd:
		remoteErr = e.adapter.AddBookmark(ctx, id)
	case models.OpRemove:
		remoteErr = e.adapter.RemoveBookmark(ctx, id)
	}
	if remoteErr == nil {
		return models.MutationApplied, nil
	}

	e.logger.Debug().
		Err(remoteErr).
		Str("func", "syncEngine.propagate").
		Str("bookmark_id", id).
		Str("kind", string(kind)).
		Msg("remote mutation failed, deferring to pending log")

	if err := e.pending.Enqueue(ctx, kind, id); err != nil {
		return models.MutationRejected, err
	}
	return models.MutationAppliedAndQueued, nil
}

// Sync implements [BookmarkEngine].
//
// The reconciliation is all-or-nothing: the merged set is computed off to the
// side and only applied locally after the remote accepted the full push, so a
// failure at any remote step leaves the bookmark set, the pending log and the
// last-sync time byte-for-byte unchanged.
func (e *syncEngine) Sync(ctx context.Context) error {
	if !e.syncGate.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer e.syncGate.Store(false)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.auth.IsAuthenticated() {
		return nil
	}

	e.setStatus(models.SyncStatus{Phase: models.SyncRunning, LastSyncedAt: e.lastSyncedAt()}, nil)

	remote, err := e.adapter.ListBookmarks(ctx)
	if err != nil {
		return e.failSync("fetch remote bookmarks", err)
	}

	local := e.bookmarks.Snapshot()
	intents := e.pending.Resolve()

	// An empty remote set against local content means a fresh or wiped
	// server account. Treat local as authoritative and seed the remote
	// instead of merging, so a server-side reset can never silently erase
	// a device's bookmarks.
	merged := local
	if len(remote) > 0 || len(local) == 0 {
		merged = mergeBookmarks(local, remote, intents)
	}

	if err = e.adapter.ReplaceBookmarks(ctx, sortedIDs(merged)); err != nil {
		return e.failSync("push merged bookmarks", err)
	}

	if err = e.bookmarks.Replace(ctx, merged); err != nil {
		return e.failSync("apply merged bookmarks", err)
	}
	if err = e.pending.Clear(ctx); err != nil {
		return e.failSync("clear pending log", err)
	}

	e.markSynced(ctx)

	e.logger.Info().
		Str("func", "syncEngine.Sync").
		Str("identity", e.identity).
		Int("bookmarks", len(merged)).
		Msg("bookmark sync completed")

	return nil
}

// mergeBookmarks unions the local and remote sets, then applies the net
// pending intent per id on top. Removals queued on this device win over
// remote presence; queued adds survive even if the id is missing on both
// sides by now.
func mergeBookmarks(local map[string]struct{}, remote []string, intents map[string]models.OperationKind) map[string]struct{} {
	merged := make(map[string]struct{}, len(local)+len(remote))
	for id := range local {
		merged[id] = struct{}{}
	}
	for _, id := range remote {
		merged[id] = struct{}{}
	}

	for id, kind := range intents {
		switch kind {
		case models.OpAdd:
			merged[id] = struct{}{}
		case models.OpRemove:
			delete(merged, id)
		}
	}

	return merged
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Status implements [BookmarkEngine].
func (e *syncEngine) Status() models.SyncStatus {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.status
}

// LastError implements [BookmarkEngine].
func (e *syncEngine) LastError() error {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.lastErr
}

func (e *syncEngine) setStatus(status models.SyncStatus, lastErr error) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status = status
	e.lastErr = lastErr
}

func (e *syncEngine) lastSyncedAt() *time.Time {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.status.LastSyncedAt
}

// failSync records the failed phase and returns an error wrapping
// [ErrSyncFailed]. An authorization failure keeps its sentinel unwrapped on
// top so callers can react to an expired session specifically.
func (e *syncEngine) failSync(stage string, cause error) error {
	err := fmt.Errorf("%w: %s: %v", ErrSyncFailed, stage, cause)
	if errors.Is(cause, adapter.ErrUnauthorized) {
		err = fmt.Errorf("%w: %s: %w", ErrSyncFailed, stage, adapter.ErrUnauthorized)
	}

	e.setStatus(models.SyncStatus{
		Phase:        models.SyncFailed,
		Reason:       stage,
		LastSyncedAt: e.lastSyncedAt(),
	}, err)

	e.logger.Warn().
		Err(cause).
		Str("func", "syncEngine.Sync").
		Str("identity", e.identity).
		Str("stage", stage).
		Msg("bookmark sync failed, local state untouched")

	return err
}

// markSynced stamps the successful completion time. The timestamp write is
// best effort: a failure here only costs the displayed "last synced" value,
// the reconciliation itself is already committed.
func (e *syncEngine) markSynced(ctx context.Context) {
	now := time.Now().UTC()
	e.setStatus(models.SyncStatus{Phase: models.SyncIdle, LastSyncedAt: &now}, nil)

	if err := e.kv.Set(ctx, store.LastSyncKey(e.identity), []byte(now.Format(time.RFC3339))); err != nil {
		e.logger.Warn().
			Err(err).
			Str("func", "syncEngine.markSynced").
			Msg("failed to persist last sync time")
	}
}

func (e *syncEngine) restoreLastSyncTime(ctx context.Context) {
	raw, err := e.kv.Get(ctx, store.LastSyncKey(e.identity))
	if err != nil {
		return
	}

	at, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return
	}
	e.status.LastSyncedAt = &at
}
