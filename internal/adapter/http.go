// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/utils"
	"github.com/tbalakin/dirbook/models"
)

const defaultRequestTimeout = 5 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, bounds every request with the configured timeout,
// retries transient failures (network errors and 5xx responses) up to
// adapterCfg.RetryCount times, and attaches the stable install id as an
// X-Client-ID header so the server can tell devices apart.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, installID string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("X-Client-ID", installID)

	if adapterCfg.RetryCount > 0 {
		cli.
			SetRetryCount(adapterCfg.RetryCount).
			SetRetryWaitTime(200 * time.Millisecond).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				// Retry only transient conditions; 4xx responses are
				// settled and must not be replayed.
				return err != nil || resp.StatusCode() >= 500
			})
	}

	return &httpServerAdapter{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp)
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp)
}

// AddBookmark implements [ServerAdapter]. It POSTs a single-bookmark mutate
// request to POST /api/bookmarks/. Requires a valid bearer token.
func (h *httpServerAdapter) AddBookmark(ctx context.Context, bookmarkID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MutateRequest{BookmarkID: bookmarkID}).
		Post("/api/bookmarks/")
	if err != nil {
		return fmt.Errorf("add bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveBookmark implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/bookmarks/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) RemoveBookmark(ctx context.Context, bookmarkID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("bookmarkID", bookmarkID).
		Delete("/api/bookmarks/{bookmarkID}")
	if err != nil {
		return fmt.Errorf("remove bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListBookmarks implements [ServerAdapter]. It GETs the full remote set from
// GET /api/bookmarks/ and decodes the response. Requires a valid bearer
// token.
func (h *httpServerAdapter) ListBookmarks(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/bookmarks/")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var br models.BookmarksResponse
	if err = json.Unmarshal(resp.Body(), &br); err != nil {
		return nil, fmt.Errorf("decode bookmarks response: %w", err)
	}

	return br.BookmarkIDs, nil
}

// ReplaceBookmarks implements [ServerAdapter]. It sets the request length
// and PUTs the full set to PUT /api/bookmarks/. Requires a valid bearer
// token.
func (h *httpServerAdapter) ReplaceBookmarks(ctx context.Context, bookmarkIDs []string) error {
	req := models.ReplaceRequest{BookmarkIDs: bookmarkIDs, Length: len(bookmarkIDs)}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/bookmarks/")
	if err != nil {
		return fmt.Errorf("replace bookmarks request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) adoptToken(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.UserIDFromUnverifiedToken(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}
