// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SaveSessionToken persists the bearer token of the current session so the
// app can restore authentication across restarts.
func SaveSessionToken(ctx context.Context, kv KeyValueStore, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to persist empty session token")
	}

	if err := kv.Set(ctx, sessionTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	return nil
}

// LoadSessionToken returns the persisted bearer token, or
// ErrLocalSessionNotFound when no session has been saved.
func LoadSessionToken(ctx context.Context, kv KeyValueStore) (string, error) {
	raw, err := kv.Get(ctx, sessionTokenKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", ErrLocalSessionNotFound
		}
		return "", fmt.Errorf("load session token: %w", err)
	}

	return string(raw), nil
}

// ClearSessionToken removes the persisted session, typically on logout.
func ClearSessionToken(ctx context.Context, kv KeyValueStore) error {
	if err := kv.Delete(ctx, sessionTokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// InstallID returns the stable per-install client identifier, creating and
// persisting a fresh UUID on first use. The id is attached to every remote
// request so the server can tell devices apart.
func InstallID(ctx context.Context, kv KeyValueStore) (string, error) {
	raw, err := kv.Get(ctx, installIDKey)
	if err == nil {
		return string(raw), nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", fmt.Errorf("load install id: %w", err)
	}

	id := uuid.NewString()
	if err = kv.Set(ctx, installIDKey, []byte(id)); err != nil {
		return "", fmt.Errorf("persist install id: %w", err)
	}

	return id, nil
}
