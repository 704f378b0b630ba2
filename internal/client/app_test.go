// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakin/dirbook/internal/adapter"
	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/store"
	"github.com/tbalakin/dirbook/internal/utils"
	"github.com/tbalakin/dirbook/models"
)

// fakeAdapter — ServerAdapter в памяти, ведёт себя как настоящий:
// Login/Register сами сохраняют выданный токен.
type fakeAdapter struct {
	mu       sync.Mutex
	token    string
	issueFor int64
	remote   []string
	replaced [][]string
	loginErr error
	signKey  string
}

func newFakeAdapter(userID int64) *fakeAdapter {
	return &fakeAdapter{issueFor: userID, signKey: "test-sign-key"}
}

func (f *fakeAdapter) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeAdapter) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAdapter) issue() (models.Token, error) {
	if f.loginErr != nil {
		return models.Token{}, f.loginErr
	}
	token, err := utils.GenerateJWTToken("dirbook-test", f.issueFor, time.Hour, f.signKey)
	if err != nil {
		return models.Token{}, err
	}
	f.SetToken(token.SignedString)
	return token, nil
}

func (f *fakeAdapter) Register(context.Context, models.User) (models.Token, error) { return f.issue() }
func (f *fakeAdapter) Login(context.Context, models.User) (models.Token, error)    { return f.issue() }
func (f *fakeAdapter) AddBookmark(context.Context, string) error                   { return nil }
func (f *fakeAdapter) RemoveBookmark(context.Context, string) error                { return nil }

func (f *fakeAdapter) ListBookmarks(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remote, nil
}

func (f *fakeAdapter) ReplaceBookmarks(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaced = append(f.replaced, ids)
	return nil
}

func newTestApp(t *testing.T, fake *fakeAdapter) *App {
	t.Helper()

	storages := &store.ClientStorages{KeyValue: store.NewMemoryKeyValueStore()}
	return newTestAppWithStorages(t, fake, storages)
}

func newTestAppWithStorages(t *testing.T, fake *fakeAdapter, storages *store.ClientStorages) *App {
	t.Helper()

	cfg := config.ClientConfig{
		Workers: config.ClientWorkers{SyncInterval: time.Hour},
	}

	app, err := NewApp(context.Background(), cfg, storages, fake, adapter.NewSessionAuth(fake), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

func TestApp_StartsAsGuest(t *testing.T) {
	app := newTestApp(t, newFakeAdapter(1))

	assert.Equal(t, store.GuestIdentity, app.Identity())

	// гостевые мутации работают офлайн и не уходят на сервер
	res, err := app.Engine().Add(context.Background(), "person-1")
	require.NoError(t, err)
	assert.Equal(t, models.MutationAppliedAndQueued, res.Outcome)
}

func TestApp_LoginSwitchesIdentityAndSyncs(t *testing.T) {
	fake := newFakeAdapter(7)
	fake.remote = []string{"remote-1"}
	app := newTestApp(t, fake)

	require.NoError(t, app.Login(context.Background(), models.User{Login: "timur", Password: "secret"}))

	assert.Equal(t, store.UserIdentity(7), app.Identity())
	// первый sync после логина уже подтянул серверные закладки
	assert.True(t, app.Engine().IsBookmarked("remote-1"))
	assert.NotEmpty(t, fake.replaced)
}

func TestApp_LoginPersistsSession(t *testing.T) {
	fake := newFakeAdapter(7)
	storages := &store.ClientStorages{KeyValue: store.NewMemoryKeyValueStore()}
	app := newTestAppWithStorages(t, fake, storages)

	require.NoError(t, app.Login(context.Background(), models.User{Login: "timur", Password: "secret"}))

	token, err := store.LoadSessionToken(context.Background(), storages.KeyValue)
	require.NoError(t, err)
	assert.Equal(t, fake.Token(), token)
}

func TestApp_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStore()

	token, err := utils.GenerateJWTToken("dirbook-test", 7, time.Hour, "test-sign-key")
	require.NoError(t, err)
	require.NoError(t, store.SaveSessionToken(ctx, kv, token.SignedString))

	app := newTestAppWithStorages(t, newFakeAdapter(7), &store.ClientStorages{KeyValue: kv})
	assert.Equal(t, store.UserIdentity(7), app.Identity())
}

func TestApp_StaleSessionTokenFallsBackToGuest(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStore()
	require.NoError(t, store.SaveSessionToken(ctx, kv, "not-a-jwt"))

	app := newTestAppWithStorages(t, newFakeAdapter(7), &store.ClientStorages{KeyValue: kv})
	assert.Equal(t, store.GuestIdentity, app.Identity())

	// испорченный токен вычищен из хранилища
	_, err := store.LoadSessionToken(ctx, kv)
	require.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestApp_LogoutReturnsToGuest(t *testing.T) {
	fake := newFakeAdapter(7)
	storages := &store.ClientStorages{KeyValue: store.NewMemoryKeyValueStore()}
	app := newTestAppWithStorages(t, fake, storages)
	ctx := context.Background()

	require.NoError(t, app.Login(ctx, models.User{Login: "timur", Password: "secret"}))
	_, err := app.Engine().Add(ctx, "user-bookmark")
	require.NoError(t, err)

	require.NoError(t, app.Logout(ctx))

	assert.Equal(t, store.GuestIdentity, app.Identity())
	assert.Empty(t, fake.Token())
	_, err = store.LoadSessionToken(ctx, storages.KeyValue)
	require.ErrorIs(t, err, store.ErrLocalSessionNotFound)

	// гостевой набор не видит закладки пользователя
	assert.False(t, app.Engine().IsBookmarked("user-bookmark"))
}

func TestApp_UserBookmarksSurviveRelogin(t *testing.T) {
	fake := newFakeAdapter(7)
	storages := &store.ClientStorages{KeyValue: store.NewMemoryKeyValueStore()}
	app := newTestAppWithStorages(t, fake, storages)
	ctx := context.Background()

	require.NoError(t, app.Login(ctx, models.User{Login: "timur", Password: "secret"}))
	_, err := app.Engine().Add(ctx, "keep-me")
	require.NoError(t, err)

	require.NoError(t, app.Logout(ctx))
	fake.remote = []string{"keep-me"}
	require.NoError(t, app.Login(ctx, models.User{Login: "timur", Password: "secret"}))

	assert.True(t, app.Engine().IsBookmarked("keep-me"))
}
