// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/roomrec/internal/breaker"
)

// BreakerConfig configures BreakerBackend.
type BreakerConfig struct {
	FailureThreshold uint32
	Timeout          time.Duration
}

// BreakerBackend guards a remote backend with a circuit breaker. While the
// breaker is open, calls fail immediately with ErrBackendUnavailable.
// ErrNotFound and caller cancellation do not count as failures.
type BreakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func NewBreakerBackend(next Backend, cfg BreakerConfig) *BreakerBackend {
	return &BreakerBackend{
		next: next,
		cb: breaker.New[[]byte](breaker.Config{
			Name:             "store-" + next.Name(),
			FailureThreshold: cfg.FailureThreshold,
			Timeout:          cfg.Timeout,
			IsSuccessful:     backendSuccessful,
		}),
	}
}

func backendSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

func (b *BreakerBackend) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := b.cb.Execute(func() ([]byte, error) {
		return b.next.Get(ctx, name)
	})
	return data, b.wrap(err)
}

func (b *BreakerBackend) Put(ctx context.Context, name string, data []byte) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.next.Put(ctx, name, data)
	})
	return b.wrap(err)
}

func (b *BreakerBackend) wrap(err error) error {
	if err != nil && breaker.Rejected(err) {
		return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, b.next.Name(), err)
	}
	return err
}

func (b *BreakerBackend) Name() string { return b.next.Name() }

func (b *BreakerBackend) Close() error { return b.next.Close() }
