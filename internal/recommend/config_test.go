// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package recommend

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.DefaultTopN != 4 {
		t.Errorf("DefaultTopN = %d, want 4", cfg.DefaultTopN)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero default top n", func(c *Config) { c.DefaultTopN = 0 }, true},
		{"max below default", func(c *Config) { c.MaxTopN = 2 }, true},
		{"no query slots", func(c *Config) { c.MaxConcurrentQueries = 0 }, true},
		{"negative slow fit threshold", func(c *Config) { c.SlowFitThreshold = -time.Second }, true},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"zero cache entries", func(c *Config) { c.Cache.MaxEntries = 0 }, true},
		{"disabled cache ignores sizing", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
			c.Cache.MaxEntries = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Cache.TTL = time.Hour
	clone.DefaultTopN = 9

	if cfg.Cache.TTL == time.Hour || cfg.DefaultTopN == 9 {
		t.Error("modifying clone changed the original")
	}
}

func TestDeleteOutcome_String(t *testing.T) {
	if OutcomeDeleted.String() != "deleted" || OutcomeNotFound.String() != "not_found" {
		t.Errorf("String() = %q, %q", OutcomeDeleted, OutcomeNotFound)
	}
}
