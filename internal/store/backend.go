// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNotFound is returned by a Backend when the table does not exist.
// It maps to os.ErrNotExist so errors.Is works for file-based callers too.
var ErrNotFound = os.ErrNotExist

var (
	// ErrBackendUnavailable indicates the backend's circuit breaker is open.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrUnknownBackend indicates an unsupported backend kind in configuration.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Backend reads and writes whole table documents by name.
type Backend interface {
	// Get returns the full document, or an error satisfying
	// errors.Is(err, ErrNotFound) when it does not exist.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put replaces the document atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Name identifies the backend kind in logs and metrics.
	Name() string

	Close() error
}

// Backend kinds accepted by Open.
const (
	KindLocal  = "local"
	KindMemory = "memory"
	KindBadger = "badger"
	KindMinio  = "minio"
	KindS3     = "s3"
)

// BackendConfig selects and configures a Backend.
type BackendConfig struct {
	Kind string

	// Dir is the table directory for local, and the database directory for
	// badger (empty runs badger in memory).
	Dir string

	Bucket    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string

	// Breaker settings for remote backends.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Open builds the backend described by cfg. Remote backends are returned
// wrapped in a circuit breaker.
func Open(ctx context.Context, cfg BackendConfig) (Backend, error) {
	switch cfg.Kind {
	case KindLocal, "":
		return NewLocalBackend(cfg.Dir)
	case KindMemory:
		return NewMemoryBackend(), nil
	case KindBadger:
		return OpenBadgerBackend(cfg.Dir)
	case KindMinio:
		b, err := NewMinioBackend(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewBreakerBackend(b, breakerConfig(cfg)), nil
	case KindS3:
		b, err := NewS3BackendFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewBreakerBackend(b, breakerConfig(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Kind)
	}
}

func breakerConfig(cfg BackendConfig) BreakerConfig {
	return BreakerConfig{
		FailureThreshold: cfg.BreakerFailures,
		Timeout:          cfg.BreakerTimeout,
	}
}
