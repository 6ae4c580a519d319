// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// Security event names.
const (
	SecurityTokenIssued   = "token_issued"
	SecurityTokenRejected = "token_rejected"
	SecurityAccessDenied  = "access_denied"
)

// SecurityEvent is an authentication or authorization decision worth
// auditing.
type SecurityEvent struct {
	Event     string
	Username  string
	Role      string
	Path      string
	Action    string
	IPAddress string
	Success   bool
	// Error is logged only for failed events, after sanitizing.
	Error string
}

// SecurityLogger writes audit lines for token and access decisions with
// usernames and errors masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger on the global logger.
func NewSecurityLogger() *SecurityLogger {
	return NewSecurityLoggerWithLogger(Logger())
}

// NewSecurityLoggerWithLogger creates a security logger on logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "security").Logger(),
	}
}

// LogEvent writes event. Failures log at warn, successes at info.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Info()
	status := "success"
	if !event.Success {
		e = l.logger.Warn()
		status = "failed"
	}

	e = e.Str("event", event.Event).Str("status", status)

	if event.Username != "" {
		e = e.Str("username", SanitizeUsername(event.Username))
	}
	if event.Role != "" {
		e = e.Str("role", truncateString(event.Role, 32))
	}
	if event.Path != "" {
		e = e.Str("path", truncateString(event.Path, 200))
	}
	if event.Action != "" {
		e = e.Str("action", event.Action)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Error != "" && !event.Success {
		e = e.Str("error", SanitizeError(event.Error))
	}

	e.Msg("Security event")
}

// LogTokenIssued records a token handed out for username.
func (l *SecurityLogger) LogTokenIssued(username, role string) {
	l.LogEvent(&SecurityEvent{
		Event:    SecurityTokenIssued,
		Username: username,
		Role:     role,
		Success:  true,
	})
}

// LogTokenRejected records a request whose bearer token was missing or invalid.
func (l *SecurityLogger) LogTokenRejected(path, ip, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     SecurityTokenRejected,
		Path:      path,
		IPAddress: ip,
		Error:     reason,
	})
}

// LogAccessDenied records a valid token whose role may not perform action.
func (l *SecurityLogger) LogAccessDenied(username, role, path, action, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     SecurityAccessDenied,
		Username:  username,
		Role:      role,
		Path:      path,
		Action:    action,
		IPAddress: ip,
	})
}

// SanitizeToken masks a token, showing only the first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUsername keeps the first 2 characters of a username.
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

var sensitiveErrorPatterns = []string{
	"password",
	"secret",
	"key",
	"bearer",
	"authorization",
	"cookie",
}

// SanitizeError replaces errors that may quote credentials with a generic
// message and truncates the rest.
func SanitizeError(err string) string {
	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitiveErrorPatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}
	return truncateString(err, 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
