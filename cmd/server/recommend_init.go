// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/roomrec/internal/config"
	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/recommend"
	"github.com/tomtom215/roomrec/internal/store"
)

// RecommendComponents holds the engine and the backend it persists to.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Backend store.Backend
}

// initRecommend opens the table backend and builds the engine. The initial
// load runs later in the rooms service so a slow object store does not
// block startup.
func initRecommend(ctx context.Context, cfg *config.Config) (*RecommendComponents, error) {
	backend, err := store.Open(ctx, storeBackendConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("open %s store backend: %w", cfg.Store.Backend, err)
	}

	rooms := store.New(backend, store.Config{
		Table:       cfg.Store.Table,
		Compression: store.Compression(cfg.Store.Compression),
	})

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), rooms, logging.WithComponent("recommend"))
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logging.Info().
		Str("backend", backend.Name()).
		Str("table", cfg.Store.Table).
		Bool("cache", cfg.Recommend.CacheEnabled).
		Msg("Recommendation engine created")

	return &RecommendComponents{Engine: engine, Backend: backend}, nil
}

func storeBackendConfig(cfg *config.Config) store.BackendConfig {
	s := cfg.Store
	return store.BackendConfig{
		Kind:            s.Backend,
		Dir:             s.Dir,
		Bucket:          s.Bucket,
		Prefix:          s.Prefix,
		Endpoint:        s.Endpoint,
		AccessKey:       s.AccessKey,
		SecretKey:       s.SecretKey,
		UseSSL:          s.UseSSL,
		Region:          s.Region,
		BreakerFailures: s.BreakerFailures,
		BreakerTimeout:  s.BreakerTimeout,
	}
}

func buildEngineConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.DefaultTopN = cfg.Recommend.DefaultTopN
	rc.MaxTopN = cfg.Recommend.MaxTopN
	rc.MaxConcurrentQueries = cfg.Recommend.MaxConcurrentQueries
	rc.Cache.Enabled = cfg.Recommend.CacheEnabled
	rc.Cache.TTL = cfg.Recommend.CacheTTL
	rc.Cache.MaxEntries = cfg.Recommend.CacheSize
	return rc
}
