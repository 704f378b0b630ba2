// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/models"
)

// PendingOperationLog is the ordered, durable list of bookmark mutations
// that have not been acknowledged by the remote store. It is append-only
// during normal operation and truncated wholesale after a successful sync
// push. Operations for the same id may repeat; the last one wins when the
// log is resolved.
type PendingOperationLog struct {
	kv     KeyValueStore
	key    string
	logger *logger.Logger

	ops []models.PendingOperation
}

// NewPendingOperationLog loads the persisted log for the given identity (an
// absent log yields an empty one). Entries that fail validation mean the
// snapshot is corrupt; that is surfaced, not skipped.
func NewPendingOperationLog(ctx context.Context, kv KeyValueStore, identity string, logger *logger.Logger) (*PendingOperationLog, error) {
	l := &PendingOperationLog{
		kv:     kv,
		key:    PendingLogKey(identity),
		logger: logger,
	}

	raw, err := kv.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return l, nil
		}
		return nil, fmt.Errorf("load pending log %q: %w", l.key, err)
	}

	var ops []models.PendingOperation
	if err = json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("%w: pending log %q: %v", ErrCorruptSnapshot, l.key, err)
	}
	for _, op := range ops {
		if err = op.Validate(); err != nil {
			return nil, fmt.Errorf("%w: pending log %q: %v", ErrCorruptSnapshot, l.key, err)
		}
	}

	l.ops = ops
	return l, nil
}

// Enqueue appends an operation with the current UTC timestamp and persists
// the full log before returning.
func (l *PendingOperationLog) Enqueue(ctx context.Context, kind models.OperationKind, bookmarkID string) error {
	op := models.PendingOperation{
		Kind:       kind,
		BookmarkID: bookmarkID,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := op.Validate(); err != nil {
		return err
	}

	l.ops = append(l.ops, op)
	if err := l.persist(ctx); err != nil {
		l.ops = l.ops[:len(l.ops)-1]
		return err
	}

	l.logger.Debug().
		Str("func", "PendingOperationLog.Enqueue").
		Str("bookmark_id", bookmarkID).
		Str("kind", string(kind)).
		Int("log_len", len(l.ops)).
		Msg("queued bookmark operation for next sync")

	return nil
}

// All returns the entries in enqueue order. The returned slice is a copy and
// may be retained by the caller.
func (l *PendingOperationLog) All() []models.PendingOperation {
	out := make([]models.PendingOperation, len(l.ops))
	copy(out, l.ops)
	return out
}

// Len returns the number of queued operations.
func (l *PendingOperationLog) Len() int {
	return len(l.ops)
}

// Clear truncates the log to empty and persists the truncation.
func (l *PendingOperationLog) Clear(ctx context.Context) error {
	prev := l.ops
	l.ops = nil
	if err := l.persist(ctx); err != nil {
		l.ops = prev
		return err
	}

	return nil
}

// Resolve collapses the log by bookmark id, keeping only the most recent
// operation per id (last-write-wins on this device). The resulting map holds
// the net intent for each id: an add that was later removed resolves to
// OpRemove, and vice versa, so a stale "add" is never replayed after a later
// "remove".
func (l *PendingOperationLog) Resolve() map[string]models.OperationKind {
	intents := make(map[string]models.OperationKind, len(l.ops))
	for _, op := range l.ops {
		intents[op.BookmarkID] = op.Kind
	}
	return intents
}

func (l *PendingOperationLog) persist(ctx context.Context) error {
	ops := l.ops
	if ops == nil {
		ops = []models.PendingOperation{}
	}

	payload, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("encode pending log %q: %w", l.key, err)
	}

	if err = l.kv.Set(ctx, l.key, payload); err != nil {
		l.logger.Err(err).
			Str("func", "PendingOperationLog.persist").
			Str("key", l.key).
			Msg("failed to persist pending operation log")
		return fmt.Errorf("persist pending log %q: %w", l.key, err)
	}

	return nil
}
