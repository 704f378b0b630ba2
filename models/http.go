// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package models

// BookmarksResponse is the payload returned by the remote bookmark listing
// endpoint. The server infers the user from the bearer token.
type BookmarksResponse struct {
	// BookmarkIDs is the full remote set of bookmarked item identifiers.
	BookmarkIDs []string `json:"bookmark_ids"`

	// Length is the total number of entries in BookmarkIDs.
	Length int `json:"length"`
}

// ReplaceRequest atomically substitutes the full remote bookmark set with
// BookmarkIDs. Used by the sync push after a merge.
type ReplaceRequest struct {
	BookmarkIDs []string `json:"bookmark_ids"`
	Length      int      `json:"length"`
}

// MutateRequest adds or removes a single bookmark on the remote store.
type MutateRequest struct {
	BookmarkID string `json:"bookmark_id"`
}
