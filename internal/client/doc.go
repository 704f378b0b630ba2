// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

// Package client implements the client application runtime.
//
// It owns the session lifecycle: one bookmark engine and one background sync
// job exist per session identity, and both are rebuilt when the user logs in,
// logs out, or a persisted session is restored at startup. UI layers hold an
// *App and talk to bookmarks only through Engine().
package client
