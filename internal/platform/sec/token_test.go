// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestTokenService_RoundTrip verifies that a generated token verifies back to
the same session ID.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "videoventa.mx")
	require.NoError(t, err)

	token, err := service.GenerateSessionToken("session-abc", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := service.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
}

/*
TestTokenService_Expired verifies that expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "videoventa.mx")
	require.NoError(t, err)

	token, err := service.GenerateSessionToken("session-abc", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifySessionToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies signature validation across instances.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService(testSecret, "videoventa.mx")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "videoventa.mx")
	require.NoError(t, err)

	token, err := signer.GenerateSessionToken("session-abc", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifySessionToken(token)
	assert.Error(t, err)
}

/*
TestNewTokenService_ShortSecret rejects weak secrets at startup.
*/
func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "videoventa.mx")
	assert.Error(t, err)
}

/*
TestCheckPasswordHash covers the bcrypt verification used by the admin gate.
*/
func TestCheckPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}
