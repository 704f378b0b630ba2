// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

import "errors"

var (
	// ErrLimitExceeded is returned by Add when the tier limit gates a new
	// bookmark. Nothing is mutated and nothing is enqueued.
	ErrLimitExceeded = errors.New("bookmark limit exceeded")

	// ErrSyncFailed wraps any remote failure during Sync. Local state is
	// left exactly as it was; the sync is retryable.
	ErrSyncFailed = errors.New("sync failed")

	// ErrSyncInProgress is returned when Sync is called while another
	// reconciliation for the same session is still running.
	ErrSyncInProgress = errors.New("sync already in progress")
)
