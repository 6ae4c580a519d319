// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package authz

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roomrec/internal/auth"
	"github.com/tomtom215/roomrec/internal/logging"
)

// Middleware provides authorization middleware using Casbin.
type Middleware struct {
	enforcer *Enforcer
	logger   zerolog.Logger
	security *logging.SecurityLogger
}

// NewMiddleware creates a new authorization middleware.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{
		enforcer: enforcer,
		logger:   logging.WithComponent("authz"),
		security: logging.NewSecurityLogger(),
	}
}

// Authorize allows the request when the caller's role may perform action on
// the request path. It must run after auth.Middleware.Authenticate; requests
// without claims are rejected with 403.
func (m *Middleware) Authorize(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "Forbidden: no authentication context", http.StatusForbidden)
				return
			}

			allowed, err := m.enforcer.Enforce(claims.Role, r.URL.Path, action)
			if err != nil {
				m.logger.Error().Err(err).Msg("Authorization error")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			if !allowed {
				m.security.LogAccessDenied(claims.Username, claims.Role, r.URL.Path, action, r.RemoteAddr)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
