// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package config loads and validates roomrec's configuration.

Settings are layered with Koanf v2: built-in defaults, then an optional YAML
file, then environment variables. The file is taken from CONFIG_PATH, or the
first of config.yaml, config.yml, /etc/roomrec/config.yaml and
/etc/roomrec/config.yml that exists.

# Environment Variables

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8000)
  - HTTP_TIMEOUT (default: 30s), SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT: development or production

Room table:
  - STORE_BACKEND: local, memory, badger, minio, s3 (default: local)
  - STORE_TABLE (default: RoomData.csv), STORE_DIR (default: .)
  - STORE_COMPRESSION: none, zstd, lz4
  - STORE_BUCKET, STORE_PREFIX, STORE_ENDPOINT, STORE_REGION,
    STORE_ACCESS_KEY, STORE_SECRET_KEY, STORE_USE_SSL
  - STORE_BREAKER_FAILURES (default: 5), STORE_BREAKER_TIMEOUT (default: 30s)

Recommendations:
  - RECOMMEND_DEFAULT_TOP_N (default: 4), RECOMMEND_MAX_TOP_N (default: 50)
  - RECOMMEND_MAX_CONCURRENT_QUERIES (default: 64)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_SIZE
  - RECOMMEND_RELOAD_INTERVAL (default: 0, disabled)

Events:
  - EVENTS_ENABLED (default: true), EVENTS_TOPIC (default: rooms.events)
  - NATS_URL: empty keeps events in-process

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - AUTH_MODE: none or jwt; JWT_SECRET (32+ characters), SESSION_TIMEOUT
  - CASBIN_MODEL_PATH, CASBIN_POLICY_PATH, CASBIN_DEFAULT_ROLE

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
