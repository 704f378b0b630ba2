// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package models

import (
	"fmt"
	"time"
)

// OperationKind identifies the intent of a locally recorded bookmark mutation.
type OperationKind string

const (
	// OpAdd records that the user bookmarked an item.
	OpAdd OperationKind = "add"
	// OpRemove records that the user removed a bookmark.
	OpRemove OperationKind = "remove"
)

// Valid reports whether k is one of the known operation kinds. Used when
// decoding a persisted pending log, where an unknown kind indicates a
// corrupted or incompatible snapshot.
func (k OperationKind) Valid() bool {
	return k == OpAdd || k == OpRemove
}

// PendingOperation is a single not-yet-acknowledged bookmark mutation.
//
// Operations are created when a remote call cannot be confirmed immediately
// and live in the pending log until a successful sync push clears them. The
// same bookmark id may appear multiple times; the last entry wins when the
// log is resolved.
type PendingOperation struct {
	// Kind is the mutation intent (add or remove).
	Kind OperationKind `json:"kind"`

	// BookmarkID is the opaque identifier of the bookmarked item.
	BookmarkID string `json:"bookmark_id"`

	// EnqueuedAt is the UTC time the operation was appended to the log.
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Validate checks the operation for structural consistency after decoding.
func (op PendingOperation) Validate() error {
	if !op.Kind.Valid() {
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
	if op.BookmarkID == "" {
		return fmt.Errorf("pending operation without bookmark id")
	}
	return nil
}
