// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

import (
	"context"

	"github.com/tbalakin/dirbook/internal/adapter"
	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/store"
)

// ClientServices bundles the engine and its background sync job for one
// session identity.
type ClientServices struct {
	Engine  BookmarkEngine
	SyncJob SyncJob
}

// NewClientServices builds the bookmark engine and its sync job for the given
// identity on top of the shared storages and server adapter.
func NewClientServices(
	ctx context.Context,
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	auth AuthProvider,
	identity string,
	logger *logger.Logger,
) (*ClientServices, error) {
	policy := NewStaticTierPolicy(cfg.App.MaxBookmarks)

	engine, err := NewBookmarkEngine(ctx, storages.KeyValue, serverAdapter, auth, policy, identity, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		Engine:  engine,
		SyncJob: NewClientSyncJob(engine, logger.GetChildLogger()),
	}, nil
}
