// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package admin_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/admin"
	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/constants"
	"github.com/videoventa-mx/videoventa/internal/platform/sec"
)

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	sessions map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]bool{}}
}

func (f *fakeSessionStore) Put(_ context.Context, sessionID string) error {
	f.sessions[sessionID] = true
	return nil
}

func (f *fakeSessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

const testPassword = "hunter2-but-longer"

func newTestService(t *testing.T, store *fakeSessionStore) *admin.Service {
	t.Helper()

	hash, err := sec.HashPassword(testPassword)
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", constants.SessionIssuer)
	require.NoError(t, err)

	return admin.NewService(hash, tokens, store, slog.New(slog.DiscardHandler))
}

/*
TestService_Login covers the credential check and session creation.
*/
func TestService_Login(t *testing.T) {
	t.Run("correct_password_opens_session", func(t *testing.T) {
		store := newFakeSessionStore()
		service := newTestService(t, store)

		token, err := service.Login(context.Background(), testPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Len(t, store.sessions, 1)
	})

	t.Run("wrong_password_unauthorized", func(t *testing.T) {
		store := newFakeSessionStore()
		service := newTestService(t, store)

		_, err := service.Login(context.Background(), "not-the-password")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
		assert.Empty(t, store.sessions)
	})

	t.Run("empty_password_unauthorized", func(t *testing.T) {
		service := newTestService(t, newFakeSessionStore())

		_, err := service.Login(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

/*
TestService_VerifySession covers the two-factor check: token signature plus
the server-side flag.
*/
func TestService_VerifySession(t *testing.T) {
	t.Run("fresh_login_verifies", func(t *testing.T) {
		store := newFakeSessionStore()
		service := newTestService(t, store)

		token, err := service.Login(context.Background(), testPassword)
		require.NoError(t, err)

		sessionID, err := service.VerifySession(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, store.sessions[sessionID])
	})

	t.Run("garbage_token_unauthorized", func(t *testing.T) {
		service := newTestService(t, newFakeSessionStore())

		_, err := service.VerifySession(context.Background(), "not.a.jwt")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("revoked_session_unauthorized", func(t *testing.T) {
		store := newFakeSessionStore()
		service := newTestService(t, store)

		token, err := service.Login(context.Background(), testPassword)
		require.NoError(t, err)

		// Valid signature, but the server-side flag is gone.
		require.NoError(t, service.Logout(context.Background(), token))

		_, err = service.VerifySession(context.Background(), token)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("token_signed_with_other_secret_unauthorized", func(t *testing.T) {
		store := newFakeSessionStore()
		service := newTestService(t, store)

		otherTokens, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", constants.SessionIssuer)
		require.NoError(t, err)
		forged, err := otherTokens.GenerateSessionToken("some-session", constants.AdminSessionTTL)
		require.NoError(t, err)

		_, err = service.VerifySession(context.Background(), forged)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

/*
TestService_Logout confirms revocation is immediate and idempotent.
*/
func TestService_Logout(t *testing.T) {
	store := newFakeSessionStore()
	service := newTestService(t, store)

	token, err := service.Login(context.Background(), testPassword)
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))
	assert.Empty(t, store.sessions)

	// Second logout with the same token is a no-op, not an error.
	require.NoError(t, service.Logout(context.Background(), token))

	// Unparseable tokens are also fine.
	require.NoError(t, service.Logout(context.Background(), "garbage"))
}
