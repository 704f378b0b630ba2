// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tbalakin/dirbook/internal/adapter"
	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/service"
	"github.com/tbalakin/dirbook/internal/store"
	"github.com/tbalakin/dirbook/models"
)

// App owns the session lifecycle of the bookmark client. It starts with the
// guest engine (or a restored authenticated session) and rebuilds the engine
// and its sync job whenever the session identity changes.
type App struct {
	cfg      config.ClientConfig
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	auth     service.AuthProvider
	logger   *logger.Logger

	mu       sync.Mutex
	identity string
	services *service.ClientServices
}

// NewApp builds the application runtime on top of the shared storages and
// server adapter. A persisted session token, if present and still parseable,
// is restored into the adapter so the app comes up authenticated; otherwise
// the session starts as guest.
func NewApp(
	ctx context.Context,
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	auth service.AuthProvider,
	logger *logger.Logger,
) (*App, error) {
	a := &App{
		cfg:      cfg,
		storages: storages,
		adapter:  serverAdapter,
		auth:     auth,
		logger:   logger,
	}

	if err := a.restoreSession(ctx); err != nil {
		return nil, err
	}

	services, err := service.NewClientServices(ctx, cfg, storages, serverAdapter, auth, a.identity, logger)
	if err != nil {
		return nil, err
	}
	a.services = services

	if a.identity != store.GuestIdentity {
		a.services.SyncJob.Start(ctx, cfg.Workers.SyncInterval)
	}

	return a, nil
}

// restoreSession loads the persisted bearer token into the adapter and picks
// the starting identity from it. A missing or unparseable token is not an
// error, it just means a guest session.
func (a *App) restoreSession(ctx context.Context) error {
	a.identity = store.GuestIdentity

	token, err := store.LoadSessionToken(ctx, a.storages.KeyValue)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	a.adapter.SetToken(token)
	userID, ok := a.auth.CurrentUserID()
	if !ok {
		// Stale or malformed token: drop it and start as guest.
		a.adapter.SetToken("")
		if err = store.ClearSessionToken(ctx, a.storages.KeyValue); err != nil {
			a.logger.Warn().
				Err(err).
				Str("func", "App.restoreSession").
				Msg("failed to clear stale session token")
		}
		return nil
	}

	a.identity = store.UserIdentity(userID)
	a.logger.Info().
		Str("func", "App.restoreSession").
		Str("identity", a.identity).
		Msg("restored authenticated session")

	return nil
}

// Engine returns the bookmark engine of the current session. The returned
// engine is replaced on login/logout; callers should re-fetch it after auth
// changes rather than caching it.
func (a *App) Engine() service.BookmarkEngine {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.services.Engine
}

// Identity returns the storage identity of the current session.
func (a *App) Identity() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity
}

// Register creates a remote account, persists the session and switches to the
// new user's engine.
func (a *App) Register(ctx context.Context, user models.User) error {
	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return a.adoptSession(ctx, token)
}

// Login authenticates against the remote store, persists the session and
// switches to the user's engine.
func (a *App) Login(ctx context.Context, user models.User) error {
	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.adoptSession(ctx, token)
}

func (a *App) adoptSession(ctx context.Context, token models.Token) error {
	if err := store.SaveSessionToken(ctx, a.storages.KeyValue, token.SignedString); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "App.adoptSession").
			Msg("session will not survive a restart")
	}

	if err := a.switchIdentity(ctx, store.UserIdentity(token.UserID)); err != nil {
		return err
	}

	// First reconciliation of the new session; queued guest-era operations
	// for this user are pushed here.
	if err := a.Engine().Sync(ctx); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
		a.logger.Warn().
			Err(err).
			Str("func", "App.adoptSession").
			Msg("initial sync after login failed, will retry in background")
	}

	return nil
}

// Logout clears the persisted session and switches back to the guest engine.
// Local bookmark data of the user stays on the device under the user's
// identity, ready for the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := store.ClearSessionToken(ctx, a.storages.KeyValue); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.adapter.SetToken("")

	return a.switchIdentity(ctx, store.GuestIdentity)
}

// switchIdentity tears down the current session's sync job, builds services
// for the new identity and starts its background sync when authenticated.
func (a *App) switchIdentity(ctx context.Context, identity string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if identity == a.identity {
		return nil
	}

	a.services.SyncJob.Stop()

	services, err := service.NewClientServices(ctx, a.cfg, a.storages, a.adapter, a.auth, identity, a.logger)
	if err != nil {
		return fmt.Errorf("switch session to %q: %w", identity, err)
	}

	a.identity = identity
	a.services = services

	if identity != store.GuestIdentity {
		a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	}

	a.logger.Info().
		Str("func", "App.switchIdentity").
		Str("identity", identity).
		Msg("session switched")

	return nil
}

// Run blocks until the process is interrupted, then shuts the app down. The
// background sync job keeps reconciling while Run is blocked.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().
		Str("func", "App.Run").
		Str("identity", a.Identity()).
		Msg("bookmark client running")

	<-ctx.Done()
	return a.Close()
}

// Close stops the background sync job and releases the local store.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.services.SyncJob.Stop()
	return a.storages.KeyValue.Close()
}
