// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/mock"
)

func TestBookmarkSet_AddRemoveContains(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)

	added, err := set.Add(ctx, "a")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, set.Contains("a"))
	assert.Equal(t, 1, set.Len())

	// повторное добавление — no-op
	added, err = set.Add(ctx, "a")
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := set.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, set.Contains("a"))

	removed, err = set.Remove(ctx, "a")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestBookmarkSet_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)
	_, err = set.Add(ctx, "a")
	require.NoError(t, err)
	_, err = set.Add(ctx, "b")
	require.NoError(t, err)

	reloaded, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)
	assert.True(t, reloaded.Contains("a"))
	assert.True(t, reloaded.Contains("b"))
	assert.Equal(t, 2, reloaded.Len())
}

func TestBookmarkSet_IdentitiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	guest, err := NewBookmarkSet(ctx, kv, GuestIdentity, logger.Nop())
	require.NoError(t, err)
	_, err = guest.Add(ctx, "guest-only")
	require.NoError(t, err)

	user, err := NewBookmarkSet(ctx, kv, UserIdentity(7), logger.Nop())
	require.NoError(t, err)
	assert.False(t, user.Contains("guest-only"))
}

func TestBookmarkSet_Replace(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)
	_, err = set.Add(ctx, "old")
	require.NoError(t, err)

	require.NoError(t, set.Replace(ctx, map[string]struct{}{"new-1": {}, "new-2": {}}))
	assert.False(t, set.Contains("old"))
	assert.True(t, set.Contains("new-1"))
	assert.True(t, set.Contains("new-2"))
}

func TestBookmarkSet_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)
	_, err = set.Add(ctx, "a")
	require.NoError(t, err)

	snap := set.Snapshot()
	delete(snap, "a")
	assert.True(t, set.Contains("a"))
}

func TestBookmarkSet_PersistedSnapshotIsSorted(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)
	for _, id := range []string{"c", "a", "b"} {
		_, err = set.Add(ctx, id)
		require.NoError(t, err)
	}

	raw, err := kv.Get(ctx, BookmarkSetKey("user-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, string(raw))
}

func TestBookmarkSet_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	require.NoError(t, kv.Set(ctx, BookmarkSetKey("user-1"), []byte("{not json")))

	_, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestBookmarkSet_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(ctx, BookmarkSetKey("user-1")).Return(nil, ErrKeyNotFound)

	set, err := NewBookmarkSet(ctx, kv, "user-1", logger.Nop())
	require.NoError(t, err)

	persistErr := errors.New("disk full")
	kv.EXPECT().Set(ctx, BookmarkSetKey("user-1"), gomock.Any()).Return(persistErr)

	_, err = set.Add(ctx, "a")
	require.ErrorIs(t, err, persistErr)
	// память откатилась вместе с неудавшейся записью
	assert.False(t, set.Contains("a"))
	assert.Zero(t, set.Len())
}
