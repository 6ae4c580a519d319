// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package breaker builds gobreaker circuit breakers that report their state
// through logging and metrics.
package breaker

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/metrics"
)

// ErrOpen is returned, wrapped around gobreaker's own error, when a call is
// rejected because the breaker is open or half-open and saturated.
var ErrOpen = errors.New("circuit breaker open")

// Config holds circuit breaker settings.
type Config struct {
	Name string

	// FailureThreshold is the number of consecutive failures that opens the
	// breaker. Default: 5
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before probing.
	// Default: 30s
	Timeout time.Duration

	// MaxRequests allowed while half-open. Default: 1
	MaxRequests uint32

	// Interval clears closed-state counts periodically. Zero never clears.
	Interval time.Duration

	// IsSuccessful classifies errors that should not count as failures,
	// such as "not found". Nil counts every non-nil error.
	IsSuccessful func(err error) bool
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRequests == 0 {
		c.MaxRequests = 1
	}
	return c
}

// New creates a circuit breaker whose state changes are logged and exported
// as the circuit_breaker_state gauge.
func New[T any](cfg Config) *gobreaker.CircuitBreaker[T] {
	cfg = cfg.withDefaults()
	logger := logging.WithComponent("breaker")

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCircuitBreakerState(name, StateValue(to))
			event := logger.Info()
			if to == gobreaker.StateOpen {
				event = logger.Warn()
			}
			event.Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
		IsSuccessful: cfg.IsSuccessful,
	}

	metrics.SetCircuitBreakerState(cfg.Name, StateValue(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[T](settings)
}

// StateValue maps a state to the gauge value: 0 closed, 1 half-open, 2 open.
func StateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Rejected reports whether err came from the breaker refusing the call rather
// than from the protected operation.
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
