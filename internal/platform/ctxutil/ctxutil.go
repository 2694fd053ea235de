// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/videoventa-mx/videoventa/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Admin Identity

// WithAdminSession returns a new context with the verified admin session ID attached.
func WithAdminSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAdminSession, sessionID)
}

// GetAdminSession retrieves the verified admin session ID from the context.
// Returns an empty string for unauthenticated requests.
func GetAdminSession(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyAdminSession).(string)
	return id
}

// IsAdmin reports whether the request carries a verified admin session.
func IsAdmin(ctx context.Context) bool {
	return GetAdminSession(ctx) != ""
}
