// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/roomrec/internal/logging"
)

// AuthMode represents the authentication strategy.
type AuthMode string

const (
	// AuthModeNone disables authentication
	AuthModeNone AuthMode = "none"

	// AuthModeJWT uses JWT Bearer tokens
	AuthModeJWT AuthMode = "jwt"
)

// Roles understood by the bundled policy.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ParseAuthMode converts a string to AuthMode.
func ParseAuthMode(s string) (AuthMode, error) {
	switch s {
	case "none", "":
		return AuthModeNone, nil
	case "jwt":
		return AuthModeJWT, nil
	default:
		return "", errors.New("invalid auth mode: " + s)
	}
}

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims attaches claims to ctx.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims set by Authenticate, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// Middleware authenticates requests.
type Middleware struct {
	mode     AuthMode
	jwt      *JWTManager
	security *logging.SecurityLogger
}

// NewMiddleware creates the authentication middleware. jwtManager may be nil
// when mode is AuthModeNone.
func NewMiddleware(mode AuthMode, jwtManager *JWTManager) *Middleware {
	return &Middleware{
		mode:     mode,
		jwt:      jwtManager,
		security: logging.NewSecurityLogger(),
	}
}

// Enabled reports whether requests must carry a token.
func (m *Middleware) Enabled() bool {
	return m.mode != AuthModeNone
}

// Authenticate rejects requests without a valid bearer token with 401 and
// stores the claims in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r)
		if err != nil {
			m.security.LogTokenRejected(r.URL.Path, r.RemoteAddr, err.Error())
			w.Header().Set("WWW-Authenticate", `Bearer realm="roomrec"`)
			http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			m.security.LogTokenRejected(r.URL.Path, r.RemoteAddr, err.Error())
			w.Header().Set("WWW-Authenticate", `Bearer realm="roomrec", error="invalid_token"`)
			http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// extractBearerToken reads the Authorization header, falling back to the
// "token" cookie.
func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}
