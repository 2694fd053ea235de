// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package admin implements the single-operator authentication gate.

There is no user table. The deployment carries one bcrypt hash of the admin
password in its environment; a successful login mints a session ID, flags it
in Redis for 24 hours, and hands the browser a signed token in an httpOnly
cookie. Logout deletes the Redis flag, which revokes the token immediately
regardless of its JWT expiry.
*/
package admin

import "context"

// SessionStore holds the server-side session flags.
type SessionStore interface {
	// Put flags a session as active for the given TTL.
	Put(ctx context.Context, sessionID string) error

	// Exists reports whether a session flag is still active.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// Delete revokes a session. Deleting an absent session is not an error;
	// logout is idempotent.
	Delete(ctx context.Context, sessionID string) error
}

// LoginInput is the login request body.
type LoginInput struct {
	Password string `json:"password"`
}

// AuthStatus is the check-auth response body.
type AuthStatus struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}
