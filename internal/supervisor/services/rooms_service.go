// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RoomsEngine is the part of recommend.Engine the rooms service drives.
type RoomsEngine interface {
	Started() bool
	Start(ctx context.Context) error
	Reload(ctx context.Context) error
	PurgeCache() int
}

// RoomsServiceConfig controls the background work around the engine.
type RoomsServiceConfig struct {
	// ReloadInterval re-reads the room table on a schedule. Zero disables it.
	ReloadInterval time.Duration

	// PurgeInterval sweeps expired recommendation cache entries.
	// Default: 1m
	PurgeInterval time.Duration

	// ReloadTimeout bounds one table read and refit.
	// Default: 1m
	ReloadTimeout time.Duration
}

// RoomsService owns the engine lifecycle. Its first job is the initial
// load: while that fails, Serve returns the error so suture retries with
// backoff and the readiness probe keeps reporting unavailable.
type RoomsService struct {
	engine RoomsEngine
	config RoomsServiceConfig
	logger zerolog.Logger
}

// NewRoomsService creates the service.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewRoomsService(engine RoomsEngine, cfg RoomsServiceConfig, logger zerolog.Logger) *RoomsService {
	if cfg.PurgeInterval <= 0 {
		cfg.PurgeInterval = time.Minute
	}
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = time.Minute
	}
	return &RoomsService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "rooms").Logger(),
	}
}

// Serve implements suture.Service.
func (s *RoomsService) Serve(ctx context.Context) error {
	if !s.engine.Started() {
		if err := s.engine.Start(ctx); err != nil {
			return fmt.Errorf("initial room load: %w", err)
		}
	}

	var reload <-chan time.Time
	if s.config.ReloadInterval > 0 {
		t := time.NewTicker(s.config.ReloadInterval)
		defer t.Stop()
		reload = t.C
	}
	purge := time.NewTicker(s.config.PurgeInterval)
	defer purge.Stop()

	s.logger.Info().
		Dur("reload_interval", s.config.ReloadInterval).
		Dur("purge_interval", s.config.PurgeInterval).
		Msg("rooms service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-reload:
			s.reload(ctx)

		case <-purge.C:
			if n := s.engine.PurgeCache(); n > 0 {
				s.logger.Debug().Int("purged", n).Msg("expired recommendation cache entries removed")
			}
		}
	}
}

// reload keeps serving the previous index when the table cannot be read.
func (s *RoomsService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.ReloadTimeout)
	defer cancel()

	start := time.Now()
	if err := s.engine.Reload(reloadCtx); err != nil {
		s.logger.Warn().Err(err).Msg("scheduled reload failed, keeping current index")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("scheduled reload complete")
}

func (s *RoomsService) String() string {
	return "rooms"
}
