// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/roomrec/internal/auth"
	"github.com/tomtom215/roomrec/internal/config"
	"github.com/tomtom215/roomrec/internal/logging"
)

// newTokenCommand issues a bearer token signed with the configured
// JWT_SECRET, for operators calling the mutation routes.
func newTokenCommand() *cobra.Command {
	var (
		username string
		role     string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token for the room mutation routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if ttl <= 0 {
				ttl = cfg.Security.SessionTimeout
			}
			token, err := issueToken(cfg.Security.JWTSecret, username, role, ttl)
			if err != nil {
				return err
			}
			logging.NewSecurityLogger().LogTokenIssued(username, role)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "subject of the token (required)")
	cmd.Flags().StringVar(&role, "role", auth.RoleEditor, "role claim: viewer, editor or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: security.session_timeout)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func issueToken(secret, username, role string, ttl time.Duration) (string, error) {
	switch role {
	case auth.RoleViewer, auth.RoleEditor, auth.RoleAdmin:
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
	manager, err := auth.NewJWTManager(secret, ttl)
	if err != nil {
		return "", fmt.Errorf("token signer: %w", err)
	}
	return manager.GenerateToken(username, role)
}
