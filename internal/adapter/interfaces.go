// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

// Package adapter provides transport-layer abstractions for communicating
// with the directory server's bookmark API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty with bounded
// per-request timeouts and transient-failure retries.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrServerLimit] for 422).
package adapter

import (
	"context"

	"github.com/tbalakin/dirbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the directory
// server. The authenticated user is always inferred server-side from the
// bearer token; no method carries a user id. Implementations are responsible
// for serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login, or after restoring a
	// persisted session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success the returned bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success the returned bearer token
	// is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// AddBookmark records a single bookmark on the remote store. Any
	// transport failure or non-2xx response is returned as an error; the
	// caller decides whether to defer the operation.
	AddBookmark(ctx context.Context, bookmarkID string) error

	// RemoveBookmark deletes a single bookmark from the remote store.
	RemoveBookmark(ctx context.Context, bookmarkID string) error

	// ListBookmarks fetches the full remote bookmark set of the
	// authenticated user.
	ListBookmarks(ctx context.Context) ([]string, error)

	// ReplaceBookmarks atomically substitutes the full remote bookmark
	// set. Used by the sync push after a merge.
	ReplaceBookmarks(ctx context.Context, bookmarkIDs []string) error
}
