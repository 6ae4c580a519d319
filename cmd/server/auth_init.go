// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package main

import (
	"fmt"

	"github.com/tomtom215/roomrec/internal/auth"
	"github.com/tomtom215/roomrec/internal/authz"
	"github.com/tomtom215/roomrec/internal/config"
	"github.com/tomtom215/roomrec/internal/logging"
)

// initAuth builds the mutation guards. With auth_mode=none the returned
// middleware lets everything through and authz is nil.
func initAuth(cfg *config.Config) (*auth.Middleware, *authz.Middleware, error) {
	mode, err := auth.ParseAuthMode(cfg.Security.AuthMode)
	if err != nil {
		return nil, nil, err
	}
	if mode == auth.AuthModeNone {
		return auth.NewMiddleware(mode, nil), nil, nil
	}

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.SessionTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt manager: %w", err)
	}

	enforcer, err := authz.NewEnforcer(authz.EnforcerConfig{
		ModelPath:   cfg.Security.Casbin.ModelPath,
		PolicyPath:  cfg.Security.Casbin.PolicyPath,
		DefaultRole: cfg.Security.Casbin.DefaultRole,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("casbin enforcer: %w", err)
	}

	logging.Info().
		Str("default_role", cfg.Security.Casbin.DefaultRole).
		Dur("session_timeout", cfg.Security.SessionTimeout).
		Msg("JWT authentication enabled for room mutations")

	return auth.NewMiddleware(mode, jwtManager), authz.NewMiddleware(enforcer), nil
}
