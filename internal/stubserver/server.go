// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package stubserver

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
)

// Server runs the stub bookmark API over HTTP and shuts down gracefully on
// SIGINT/SIGTERM/SIGQUIT.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer builds the HTTP server around the handler's router.
func NewServer(handler *Handler, cfg *config.StubServerConfig, logger *logger.Logger) *Server {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Server{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler.Init(),
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		logger: logger,
	}
}

// RunServer serves until a stop signal arrives, then drains connections.
func (s *Server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().
		Str("address", s.server.Addr).
		Msg("launching stub bookmark server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("HTTP server ListenAndServe")
		return
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
