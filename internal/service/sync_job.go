// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tbalakin/dirbook/internal/logger"
)

const defaultSyncInterval = 30 * time.Second

// clientSyncJob periodically triggers engine.Sync in the background. One job
// exists per session; it is stopped and replaced when the session identity
// changes.
type clientSyncJob struct {
	engine BookmarkEngine
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob returns a stopped SyncJob driving the given engine.
func NewClientSyncJob(engine BookmarkEngine, logger *logger.Logger) SyncJob {
	return &clientSyncJob{
		engine: engine,
		logger: logger,
	}
}

// Start implements [SyncJob].
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		interval = defaultSyncInterval
	}

	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(jobCtx, interval)
}

// Stop implements [SyncJob].
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()
}

func (j *clientSyncJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.logger.Info().
		Str("func", "clientSyncJob.run").
		Dur("interval", interval).
		Msg("background bookmark sync started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().
				Str("func", "clientSyncJob.run").
				Msg("background bookmark sync stopped")
			return
		case <-ticker.C:
			j.syncOnce(ctx)
		}
	}
}

func (j *clientSyncJob) syncOnce(ctx context.Context) {
	err := j.engine.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		// A manual sync is already running; this tick is redundant.
		j.logger.Debug().
			Str("func", "clientSyncJob.syncOnce").
			Msg("skipping tick, sync already running")
	default:
		j.logger.Warn().
			Err(err).
			Str("func", "clientSyncJob.syncOnce").
			Msg("periodic bookmark sync failed")
	}
}
