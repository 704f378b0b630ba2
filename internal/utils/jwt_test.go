// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("dirbook", 42, time.Hour, "sign-key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)

	validated, err := ValidateJWTToken(token.SignedString, "sign-key")
	require.NoError(t, err)
	assert.Equal(t, int64(42), validated.UserID)
	assert.Equal(t, "dirbook", validated.RegisteredClaims.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 1, time.Hour, "key")
	require.Error(t, err)

	_, err = GenerateJWTToken("dirbook", 1, 0, "key")
	require.Error(t, err)

	_, err = GenerateJWTToken("dirbook", 1, time.Hour, "")
	require.Error(t, err)
}

func TestValidateJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("dirbook", 42, time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = ValidateJWTToken(token.SignedString, "other-key")
	require.Error(t, err)
}

func TestValidateJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("dirbook", 42, -time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = ValidateJWTToken(token.SignedString, "sign-key")
	require.Error(t, err)
}

func TestUserIDFromUnverifiedToken(t *testing.T) {
	token, err := GenerateJWTToken("dirbook", 42, time.Hour, "sign-key")
	require.NoError(t, err)

	// подпись не проверяется — ключ знать не нужно
	userID, err := UserIDFromUnverifiedToken(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = UserIDFromUnverifiedToken("garbage")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	require.Error(t, err)
}
