// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package models

// MutationOutcome describes how a bookmark mutation was settled. Queuing is
// an expected path, not an exceptional one, so the outcome is a tagged value
// rather than an error.
type MutationOutcome string

const (
	// MutationApplied: the local write succeeded and the remote store
	// confirmed the change in the same call.
	MutationApplied MutationOutcome = "applied"

	// MutationAppliedAndQueued: the local write succeeded but the remote
	// call failed; the operation was enqueued for the next sync.
	MutationAppliedAndQueued MutationOutcome = "applied_and_queued"

	// MutationRejected: nothing was mutated (idempotent no-op or tier
	// limit).
	MutationRejected MutationOutcome = "rejected"
)

// MutationResult is returned by the engine's Add/Remove/Toggle operations.
type MutationResult struct {
	// Outcome tags how the mutation was settled.
	Outcome MutationOutcome `json:"outcome"`

	// Changed reports whether the local bookmark set actually changed.
	Changed bool `json:"changed"`
}
