// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import "fmt"

// GuestIdentity is the distinguished local-only identity used before login.
// Its bookmark set lives only on the device and its pending log is never
// pushed.
const GuestIdentity = "guest"

// UserIdentity builds the storage identity for an authenticated user id.
func UserIdentity(userID int64) string {
	return fmt.Sprintf("user-%d", userID)
}

// BookmarkSetKey is the keyspace key holding the serialized bookmark set of
// the given identity.
func BookmarkSetKey(identity string) string {
	return "bookmarks/" + identity
}

// PendingLogKey is the keyspace key holding the serialized pending operation
// log of the given identity.
func PendingLogKey(identity string) string {
	return "pending/" + identity
}

// LastSyncKey is the keyspace key holding the RFC 3339 time of the last
// successful sync of the given identity.
func LastSyncKey(identity string) string {
	return "last_sync/" + identity
}

const (
	sessionTokenKey = "session/token"
	installIDKey    = "install_id"
)
