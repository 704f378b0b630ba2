// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/utils"
	"github.com/tbalakin/dirbook/models"
)

// Handler serves the stub bookmark API. All state is held in memory and
// guarded by a single mutex; the stub is not built for load.
type Handler struct {
	cfg    *config.StubServerConfig
	logger *logger.Logger

	mu        sync.Mutex
	nextID    int64
	accounts  map[string]account
	bookmarks map[int64]map[string]struct{}
}

type account struct {
	userID   int64
	password string
}

// NewHandler returns a Handler with empty in-memory state.
func NewHandler(cfg *config.StubServerConfig, logger *logger.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		nextID:    1,
		accounts:  make(map[string]account),
		bookmarks: make(map[int64]map[string]struct{}),
	}
}

// Init builds the chi router for the stub API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.logging)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/bookmarks/", h.listBookmarks)
		r.Put("/api/bookmarks/", h.replaceBookmarks)
		r.Post("/api/bookmarks/", h.addBookmark)
		r.Delete("/api/bookmarks/{bookmarkID}", h.removeBookmark)
	})

	return router
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if user.Login == "" || user.Password == "" {
		http.Error(w, "login and password are required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if _, exists := h.accounts[user.Login]; exists {
		h.mu.Unlock()
		log.Warn().Str("login", user.Login).Msg("login already exists")
		http.Error(w, "login already exists", http.StatusConflict)
		return
	}
	userID := h.nextID
	h.nextID++
	h.accounts[user.Login] = account{userID: userID, password: user.Password}
	h.bookmarks[userID] = make(map[string]struct{})
	h.mu.Unlock()

	h.issueToken(w, log, userID)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	acc, exists := h.accounts[user.Login]
	h.mu.Unlock()

	if !exists || acc.password != user.Password {
		log.Warn().Str("login", user.Login).Msg("no user was found/wrong password")
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
		return
	}

	h.issueToken(w, log, acc.userID)
}

func (h *Handler) issueToken(w http.ResponseWriter, log *logger.Logger, userID int64) {
	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, userID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.mu.Lock()
	set := h.bookmarks[userID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	h.mu.Unlock()
	sort.Strings(ids)

	utils.WriteJSON(w, models.BookmarksResponse{BookmarkIDs: ids, Length: len(ids)}, http.StatusOK)
}

func (h *Handler) replaceBookmarks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Length != len(req.BookmarkIDs) {
		http.Error(w, "length does not match bookmark ids", http.StatusBadRequest)
		return
	}
	if h.overLimit(len(req.BookmarkIDs)) {
		http.Error(w, "bookmark limit exceeded", http.StatusUnprocessableEntity)
		return
	}

	next := make(map[string]struct{}, len(req.BookmarkIDs))
	for _, id := range req.BookmarkIDs {
		next[id] = struct{}{}
	}

	h.mu.Lock()
	h.bookmarks[userID] = next
	h.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.MutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.BookmarkID == "" {
		http.Error(w, "bookmark id is required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.bookmarks[userID]
	if set == nil {
		set = make(map[string]struct{})
		h.bookmarks[userID] = set
	}
	if _, exists := set[req.BookmarkID]; !exists && h.overLimit(len(set)+1) {
		http.Error(w, "bookmark limit exceeded", http.StatusUnprocessableEntity)
		return
	}

	set[req.BookmarkID] = struct{}{}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) removeBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID := chi.URLParam(r, "bookmarkID")
	if bookmarkID == "" {
		http.Error(w, "bookmark id is required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.bookmarks[userID]
	if _, exists := set[bookmarkID]; !exists {
		http.Error(w, "bookmark not found", http.StatusNotFound)
		return
	}

	delete(set, bookmarkID)
	w.WriteHeader(http.StatusOK)
}

// overLimit reports whether count violates the configured server-side limit.
func (h *Handler) overLimit(count int) bool {
	return h.cfg.MaxBookmarks > 0 && count > h.cfg.MaxBookmarks
}
