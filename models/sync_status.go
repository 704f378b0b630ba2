// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package models

import "time"

// SyncPhase is the coarse state of the reconciliation state machine:
// idle -> syncing -> idle on success, syncing -> failed on failure,
// failed -> syncing on retry. There is no terminal phase.
type SyncPhase string

const (
	SyncIdle    SyncPhase = "idle"
	SyncRunning SyncPhase = "syncing"
	SyncFailed  SyncPhase = "failed"
)

// SyncStatus is the observable sync state surfaced to UI layers. It is
// transient: the engine always starts a session in SyncIdle regardless of how
// the previous process ended.
type SyncStatus struct {
	// Phase is the current state-machine phase.
	Phase SyncPhase `json:"phase"`

	// Reason holds a short human-readable failure cause when Phase is
	// SyncFailed, empty otherwise.
	Reason string `json:"reason,omitempty"`

	// LastSyncedAt is the completion time of the most recent successful
	// sync, nil if the session has never synced.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}
