// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package admin

import (
	"context"
	"log/slog"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/constants"
	"github.com/videoventa-mx/videoventa/internal/platform/sec"
	"github.com/videoventa-mx/videoventa/pkg/uuid"
)

// Service implements the login, verification, and logout flows.
//
// It also satisfies the middleware SessionVerifier interface, so the same
// verification path serves both the session-injection middleware and the
// explicit check-auth endpoint.
type Service struct {
	passwordHash string
	tokens       *sec.TokenService
	sessions     SessionStore
	logger       *slog.Logger
}

func NewService(passwordHash string, tokens *sec.TokenService, sessions SessionStore, logger *slog.Logger) *Service {
	return &Service{
		passwordHash: passwordHash,
		tokens:       tokens,
		sessions:     sessions,
		logger:       logger,
	}
}

// Login checks the password against the configured hash and opens a session.
// It returns the signed session token for the cookie.
//
// The error is identical for wrong and empty passwords; there is nothing to
// enumerate against a single-credential gate, but the habit is free.
func (service *Service) Login(context context.Context, password string) (string, error) {
	if password == "" || !sec.CheckPasswordHash(password, service.passwordHash) {
		service.logger.Warn("admin_login_failed")
		return "", apperr.Unauthorized("Invalid password")
	}

	sessionID := uuid.New()
	if err := service.sessions.Put(context, sessionID); err != nil {
		return "", apperr.Internal(err)
	}

	token, err := service.tokens.GenerateSessionToken(sessionID, constants.AdminSessionTTL)
	if err != nil {
		// Token signing failed after the flag was written; drop the orphan.
		_ = service.sessions.Delete(context, sessionID)
		return "", apperr.Internal(err)
	}

	service.logger.Info("admin_login", slog.String("session_id", sessionID))
	return token, nil
}

// VerifySession validates a session token end to end: signature, expiry, and
// the server-side Redis flag. It returns the session ID on success.
func (service *Service) VerifySession(context context.Context, token string) (string, error) {
	sessionID, err := service.tokens.VerifySessionToken(token)
	if err != nil {
		return "", apperr.Unauthorized("Invalid session")
	}

	active, err := service.sessions.Exists(context, sessionID)
	if err != nil {
		return "", apperr.Internal(err)
	}
	if !active {
		return "", apperr.Unauthorized("Session expired or revoked")
	}

	return sessionID, nil
}

// Logout revokes the session behind the token. A token that no longer
// verifies is treated as already logged out.
func (service *Service) Logout(context context.Context, token string) error {
	sessionID, err := service.tokens.VerifySessionToken(token)
	if err != nil {
		return nil
	}

	if err := service.sessions.Delete(context, sessionID); err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("admin_logout", slog.String("session_id", sessionID))
	return nil
}
