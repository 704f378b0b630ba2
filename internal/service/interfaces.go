// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

import (
	"context"
	"time"

	"github.com/tbalakin/dirbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BookmarkEngine is the public bookmark API exposed to the rest of the app.
// One engine is constructed per session identity and passed explicitly to UI
// layers; there is no process-wide instance.
//
// Mutations are local-first: Add/Remove/Toggle apply the durable local write
// and return immediately; a failed or unavailable remote call defers the
// operation to the pending log instead of failing the caller.
type BookmarkEngine interface {
	// IsBookmarked reports whether id is currently bookmarked. No I/O.
	IsBookmarked(id string) bool

	// Add bookmarks id. Returns [ErrLimitExceeded] when the tier limit
	// gates the addition (nothing mutated, nothing enqueued). A remote
	// failure is not an error: the result is tagged
	// MutationAppliedAndQueued.
	Add(ctx context.Context, id string) (models.MutationResult, error)

	// Remove unbookmarks id. Symmetric to Add, with no tier-limit check.
	Remove(ctx context.Context, id string) (models.MutationResult, error)

	// Toggle removes id when present, adds it otherwise, and returns the
	// underlying mutation result.
	Toggle(ctx context.Context, id string) (models.MutationResult, error)

	// Sync reconciles local and remote state: fetch, union-merge, apply
	// pending intents, bulk push. A no-op for unauthenticated sessions.
	// Returns ErrSyncInProgress when a reconciliation is already running,
	// or an error wrapping ErrSyncFailed when a remote step fails (local
	// state is then left untouched).
	Sync(ctx context.Context) error

	// Status returns the observable sync state for UI feedback.
	Status() models.SyncStatus

	// LastError returns the failure cause of the most recent failed sync,
	// or nil.
	LastError() error
}

// AuthProvider supplies the engine with the session's authentication state.
type AuthProvider interface {
	// IsAuthenticated reports whether the session currently holds a
	// usable identity.
	IsAuthenticated() bool

	// CurrentUserID returns the authenticated user id, or ok == false
	// for guest sessions.
	CurrentUserID() (int64, bool)
}

// TierPolicy supplies the maximum-bookmark-count policy of the active plan.
type TierPolicy interface {
	// MaxBookmarks returns the limit gating new additions. Zero or
	// negative means unlimited. The limit only gates new adds: a set
	// already above a lowered limit is frozen, never trimmed.
	MaxBookmarks() int
}

// SyncJob is a background worker that periodically triggers Sync for the
// session it was built for.
type SyncJob interface {
	// Start launches the background sync goroutine, syncing every
	// interval (a non-positive interval falls back to a default). Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
