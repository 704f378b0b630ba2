// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import "errors"

var (
	// ErrKeyNotFound is returned by KeyValueStore.Get for absent keys.
	ErrKeyNotFound = errors.New("key not found in local store")

	// ErrCorruptSnapshot indicates a persisted blob could not be decoded.
	// Local storage corruption is fatal for the affected structure and is
	// never silently swallowed.
	ErrCorruptSnapshot = errors.New("corrupt local snapshot")

	// ErrLocalSessionNotFound is returned when no persisted session token
	// exists for the client.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
