// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session token issuer and cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "videoventa-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	// HeaderXRequestID carries the per-request correlation ID.
	HeaderXRequestID = "X-Request-ID"

	// HeaderOrigin is the browser-supplied CORS origin header.
	HeaderOrigin = "Origin"

	// HeaderXRealIP and HeaderXForwardedFor carry the client address when the
	// server sits behind a reverse proxy.
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Admin Session

const (
	// SessionIssuer is the standard 'iss' claim in admin session tokens.
	SessionIssuer = "videoventa.mx"

	// AdminSessionCookieName is the name of the httpOnly cookie carrying the
	// admin session token.
	AdminSessionCookieName = "vv_admin_session"

	// AdminSessionTTL is the lifetime of an admin session. Sessions are not
	// extended on activity; the admin logs in again after expiry.
	AdminSessionTTL = 24 * time.Hour
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaSite    = "site"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixAdminSession = "admin:session:"
	RedisKeySiteConfig      = "site:config"
)
