// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package logging provides zerolog-based structured logging for roomrec.
//
// A global logger is configured once from main with Init, from the LOG_LEVEL,
// LOG_FORMAT and LOG_CALLER settings. Components take a child logger from
// WithComponent; request-scoped code uses Ctx, which adds the request and
// correlation IDs carried by the context.
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Service: "roomrec"})
//	logging.Info().Int("rooms", n).Msg("Room table loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Publish failed")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
//
// # Adapters
//
// NewSlogLogger bridges slog to zerolog for the suture supervisor tree, and
// NewWatermillAdapter does the same for Watermill publishers and subscribers.
//
// # Security Events
//
// SecurityLogger writes audit lines for issued and rejected tokens and for
// denied room mutations, with usernames masked and credential-bearing error
// text replaced.
package logging
