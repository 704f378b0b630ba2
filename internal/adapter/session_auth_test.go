// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tbalakin/dirbook/internal/mock"
	"github.com/tbalakin/dirbook/internal/utils"
)

func TestSessionAuth_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().Token().Return("").AnyTimes()

	auth := NewSessionAuth(mockAdapter)
	assert.False(t, auth.IsAuthenticated())

	_, ok := auth.CurrentUserID()
	assert.False(t, ok)
}

func TestSessionAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token, err := utils.GenerateJWTToken("dirbook-test", 42, time.Hour, "test-sign-key")
	require.NoError(t, err)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().Token().Return(token.SignedString).AnyTimes()

	auth := NewSessionAuth(mockAdapter)
	assert.True(t, auth.IsAuthenticated())

	userID, ok := auth.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestSessionAuth_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().Token().Return("not-a-jwt").AnyTimes()

	auth := NewSessionAuth(mockAdapter)
	assert.False(t, auth.IsAuthenticated())
}
