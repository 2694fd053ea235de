// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package middleware

import (
	"context"
	"net/http"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/constants"
	"github.com/videoventa-mx/videoventa/internal/platform/ctxutil"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
)

// SessionVerifier defines the interface needed to verify admin sessions.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the `admin`
// service implementation, allowing us to easily inject mocks during unit testing.
type SessionVerifier interface {
	// VerifySession checks the token signature and the server-side session
	// flag, returning the session ID on success.
	VerifySession(ctx context.Context, token string) (string, error)
}

// AdminSession reads the admin session cookie, verifies it, and injects the
// session ID into the request context.
//
// # Flow
//  1. Check for the session cookie. If absent, request proceeds as anonymous.
//  2. If present, verify the token signature and the Redis session flag.
//  3. Inject the verified session ID into the request context.
//
// An invalid or expired cookie does NOT abort the request here; public
// endpoints stay reachable with a stale cookie. Mutation endpoints are
// guarded separately by [RequireAdmin].
func AdminSession(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.AdminSessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			sessionID, err := verifier.VerifySession(request.Context(), cookie.Value)
			if err != nil {
				// Stale cookie: continue anonymously.
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAdminSession(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that do not carry a verified admin session.
//
// # Usage
//
// Must be registered in the router AFTER [AdminSession]. Mutation endpoints
// fail closed: a missing or invalid session returns 401 before any write.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !ctxutil.IsAdmin(request.Context()) {
			respond.Error(writer, request, apperr.Unauthorized("Administrator authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
