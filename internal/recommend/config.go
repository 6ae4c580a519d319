// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultTopN is used when a request asks for zero or fewer rooms.
	// Default: 4.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps the number of rooms per request.
	// Default: 50.
	MaxTopN int `json:"max_top_n"`

	// MaxConcurrentQueries bounds in-flight ranking computations. Further
	// queries wait for a slot or for their context to end.
	// Default: 64.
	MaxConcurrentQueries int64 `json:"max_concurrent_queries"`

	// SlowFitThreshold logs a throttled warning when a fit takes longer.
	// Default: 2s.
	SlowFitThreshold time.Duration `json:"slow_fit_threshold"`

	// Cache contains caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN:          4,
		MaxTopN:              50,
		MaxConcurrentQueries: 64,
		SlowFitThreshold:     2 * time.Second,
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n (%d) must be >= default_top_n (%d)", c.MaxTopN, c.DefaultTopN)
	}
	if c.MaxConcurrentQueries < 1 {
		return fmt.Errorf("max_concurrent_queries must be positive, got %d", c.MaxConcurrentQueries)
	}
	if c.SlowFitThreshold < 0 {
		return fmt.Errorf("slow_fit_threshold must be non-negative, got %s", c.SlowFitThreshold)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
