// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development" or "production". Production refuses
	// wildcard CORS together with authentication.
	Environment string `koanf:"environment"`
}

// StoreConfig selects where the room table lives.
//
// Environment Variables:
//   - STORE_BACKEND: local, memory, badger, minio or s3 (default: local)
//   - STORE_TABLE: table document name (default: RoomData.csv)
//   - STORE_DIR: directory for local and badger (default: .)
//   - STORE_COMPRESSION: none, zstd or lz4 (default: none)
//   - STORE_BUCKET, STORE_PREFIX, STORE_ENDPOINT, STORE_REGION: object storage location
//   - STORE_ACCESS_KEY, STORE_SECRET_KEY, STORE_USE_SSL: object storage credentials
//   - STORE_BREAKER_FAILURES, STORE_BREAKER_TIMEOUT: circuit breaker for remote backends
type StoreConfig struct {
	Backend     string `koanf:"backend"`
	Table       string `koanf:"table"`
	Dir         string `koanf:"dir"`
	Compression string `koanf:"compression"`

	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	UseSSL    bool   `koanf:"use_ssl"`
	Region    string `koanf:"region"`

	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultTopN          int   `koanf:"default_top_n"`
	MaxTopN              int   `koanf:"max_top_n"`
	MaxConcurrentQueries int64 `koanf:"max_concurrent_queries"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheSize    int           `koanf:"cache_size"`

	// ReloadInterval re-reads the table from the store periodically so
	// edits made outside the service are picked up. 0 disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// EventsConfig holds room change event settings.
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`

	// NATSURL selects a NATS server. Empty keeps events in-process.
	NATSURL string `koanf:"nats_url"`
	Topic   string `koanf:"topic"`

	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS, rate limiting and authentication settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// AuthMode is "none" (default) or "jwt". With jwt, room mutations need
	// a bearer token whose role the Casbin policy allows.
	AuthMode       string        `koanf:"auth_mode"`
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`

	Casbin CasbinConfig `koanf:"casbin"`
}

// CasbinConfig overrides the embedded authorization model and policy.
type CasbinConfig struct {
	ModelPath   string `koanf:"model_path"`
	PolicyPath  string `koanf:"policy_path"`
	DefaultRole string `koanf:"default_role"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
