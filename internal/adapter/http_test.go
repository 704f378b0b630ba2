// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/utils"
	"github.com/tbalakin/dirbook/models"
)

const testInstallID = "11111111-2222-3333-4444-555555555555"

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    ts.URL,
		RequestTimeout: 2 * time.Second,
	}, testInstallID, logger.Nop())
	require.NoError(t, err)

	return a, ts
}

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("dirbook-test", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestNewHTTPServerAdapter_AddressValidation(t *testing.T) {
	log := logger.Nop()

	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, testInstallID, log)
	require.Error(t, err)

	// адрес без схемы нормализуется в http://
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, testInstallID, log)
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestHTTPServerAdapter_Login_AdoptsToken(t *testing.T) {
	wantToken := signedTestToken(t, 42)

	var gotUser models.User
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, testInstallID, r.Header.Get("X-Client-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUser))

		w.Header().Set("Authorization", "Bearer "+wantToken)
		w.WriteHeader(http.StatusOK)
	})

	a, _ := newTestAdapter(t, handler)

	token, err := a.Login(context.Background(), models.User{Login: "timur", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, wantToken, token.SignedString)
	assert.Equal(t, wantToken, a.Token())
	assert.Equal(t, "timur", gotUser.Login)
}

func TestHTTPServerAdapter_Register_InvalidCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "login already exists", http.StatusConflict)
	})

	a, _ := newTestAdapter(t, handler)

	_, err := a.Register(context.Background(), models.User{Login: "timur", Password: "secret"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_AddBookmark(t *testing.T) {
	token := signedTestToken(t, 1)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookmarks/", r.URL.Path)
		require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		var req models.MutateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "person-7", req.BookmarkID)

		w.WriteHeader(http.StatusOK)
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(token)

	require.NoError(t, a.AddBookmark(context.Background(), "person-7"))
}

func TestHTTPServerAdapter_AddBookmark_ServerLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bookmark limit exceeded", http.StatusUnprocessableEntity)
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(signedTestToken(t, 1))

	err := a.AddBookmark(context.Background(), "person-7")
	require.ErrorIs(t, err, ErrServerLimit)
}

func TestHTTPServerAdapter_RemoveBookmark(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/bookmarks/person-7", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(signedTestToken(t, 1))

	require.NoError(t, a.RemoveBookmark(context.Background(), "person-7"))
}

func TestHTTPServerAdapter_RemoveBookmark_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bookmark not found", http.StatusNotFound)
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(signedTestToken(t, 1))

	err := a.RemoveBookmark(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_ListBookmarks(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/bookmarks/", r.URL.Path)

		resp := models.BookmarksResponse{BookmarkIDs: []string{"a", "b"}, Length: 2}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(signedTestToken(t, 1))

	ids, err := a.ListBookmarks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestHTTPServerAdapter_ListBookmarks_Unauthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "empty Authorization header", http.StatusUnauthorized)
	})

	a, _ := newTestAdapter(t, handler)

	_, err := a.ListBookmarks(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPServerAdapter_ReplaceBookmarks(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/bookmarks/", r.URL.Path)

		var req models.ReplaceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"a", "b", "c"}, req.BookmarkIDs)
		require.Equal(t, 3, req.Length)

		w.WriteHeader(http.StatusOK)
	})

	a, _ := newTestAdapter(t, handler)
	a.SetToken(signedTestToken(t, 1))

	require.NoError(t, a.ReplaceBookmarks(context.Background(), []string{"a", "b", "c"}))
}

func TestHTTPServerAdapter_SetTokenTrims(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "http://localhost:1"}, testInstallID, logger.Nop())
	require.NoError(t, err)

	a.SetToken("  token  ")
	assert.Equal(t, "token", a.Token())
}
