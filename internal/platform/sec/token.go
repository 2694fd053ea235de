// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload embedded inside an admin session token.
//
// The token carries only the session ID (standard 'jti' claim). All authority
// lives server-side: a token is only valid while its session flag exists in
// Redis, so logout revokes it immediately regardless of the JWT expiry.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenService signs and verifies admin session tokens using HS256.
//
// A single symmetric secret is sufficient here: tokens are issued and
// verified by the same process, and there is no cross-service audience.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService from the shared session secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes")
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateSessionToken creates a signed session token for the given session ID.
func (service *TokenService) GenerateSessionToken(sessionID string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// VerifySessionToken checks the signature and validity of a session token
// and returns the embedded session ID.
func (service *TokenService) VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("sec: invalid session token claims")
	}

	return claims.ID, nil
}
