// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package config

import (
	"fmt"
	"time"
)

// StubServerConfig is the configuration view used by the development stub
// server.
type StubServerConfig struct {
	// HTTPAddress is the TCP address the stub server listens on.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// TokenSignKey signs issued JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
	// MaxBookmarks mirrors the tier limit enforced server-side.
	// Zero or negative means unlimited.
	MaxBookmarks int
}

// GetStubServerConfig builds and validates the stub server config view from
// the merged structured configuration.
func GetStubServerConfig() (*StubServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &StubServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		MaxBookmarks:   cfg.App.MaxBookmarks,
	}

	return serverCfg, serverCfg.validate()
}
