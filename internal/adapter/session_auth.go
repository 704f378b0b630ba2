// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package adapter

import (
	"github.com/tbalakin/dirbook/internal/utils"
)

// SessionAuth derives the authentication state of the current session from
// the bearer token held by a [ServerAdapter]. It satisfies the engine's
// AuthProvider contract: the session is authenticated exactly when the
// adapter holds a token with a parseable user id.
type SessionAuth struct {
	adapter ServerAdapter
}

// NewSessionAuth wraps adapter in a SessionAuth.
func NewSessionAuth(adapter ServerAdapter) *SessionAuth {
	return &SessionAuth{adapter: adapter}
}

// IsAuthenticated reports whether the adapter currently holds a usable
// bearer token.
func (s *SessionAuth) IsAuthenticated() bool {
	_, ok := s.CurrentUserID()
	return ok
}

// CurrentUserID returns the user id encoded in the session token's "sub"
// claim, or ok == false when the session is unauthenticated.
func (s *SessionAuth) CurrentUserID() (int64, bool) {
	token := s.adapter.Token()
	if token == "" {
		return 0, false
	}

	userID, err := utils.UserIDFromUnverifiedToken(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}
