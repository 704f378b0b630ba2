// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package models

// User carries the credentials exchanged with the directory server during
// registration and login. Only Login and Password travel on the wire; UserID
// is filled from the issued token.
type User struct {
	UserID   int64  `json:"user_id,omitempty"`
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
}
