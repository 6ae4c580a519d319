// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type traceKey struct{}

// trace holds the IDs Ctx attaches to every log line.
type trace struct {
	requestID     string
	correlationID string
}

func traceFrom(ctx context.Context) trace {
	t, _ := ctx.Value(traceKey{}).(trace)
	return t
}

// NewRequestID returns a UUID for an HTTP request that arrived without one.
func NewRequestID() string {
	return uuid.NewString()
}

func newCorrelationID() string {
	return uuid.NewString()[:8]
}

// WithRequestID tags ctx with an HTTP request ID and starts a new
// correlation ID for the work done on its behalf.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, traceKey{}, trace{
		requestID:     requestID,
		correlationID: newCorrelationID(),
	})
}

// WithCorrelationID tags ctx for background work, such as handling a
// consumed room event. An empty id generates one. A request ID already on
// ctx is kept.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = newCorrelationID()
	}
	t := traceFrom(ctx)
	t.correlationID = id
	return context.WithValue(ctx, traceKey{}, t)
}

// RequestID returns the request ID on ctx, or "".
func RequestID(ctx context.Context) string {
	return traceFrom(ctx).requestID
}

// CorrelationID returns the correlation ID on ctx, or "".
func CorrelationID(ctx context.Context) string {
	return traceFrom(ctx).correlationID
}

// Ctx returns the global logger with ctx's request_id and correlation_id.
//
//	logging.Ctx(ctx).Info().Str("room_id", id).Msg("Room added")
func Ctx(ctx context.Context) *zerolog.Logger {
	t := traceFrom(ctx)
	if t == (trace{}) {
		l := Logger()
		return &l
	}

	logCtx := With()
	if t.requestID != "" {
		logCtx = logCtx.Str("request_id", t.requestID)
	}
	if t.correlationID != "" {
		logCtx = logCtx.Str("correlation_id", t.correlationID)
	}
	l := logCtx.Logger()
	return &l
}

// WithComponent creates a child logger with a component field.
//
//	logger := logging.WithComponent("store")
//	logger.Info().Int("rooms", n).Msg("Room table loaded")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
