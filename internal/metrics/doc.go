// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package metrics defines the Prometheus metrics of the service.

All collectors are registered on the default registry via promauto and are
exposed at /metrics by the API router.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendation:
  - recommendation_duration_seconds: ranking time on cache misses
  - recommendation_results: rooms returned per request
  - recommendation_cache_hits_total, recommendation_cache_misses_total

Collection and index:
  - room_mutations_total{operation, outcome}
  - rooms_indexed, index_vocabulary_size, index_version
  - index_fit_duration_seconds, index_fit_errors_total

Persistence:
  - room_table_io_duration_seconds{backend, operation}
  - room_table_bytes{backend, operation}
  - room_table_errors_total{backend, operation}
  - circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open

Events:
  - room_events_published_total{type, result}
  - room_events_consumed_total{type}

System:
  - app_info{version, go_version}, app_uptime_seconds

# Usage

Record helpers keep label sets consistent across callers:

	start := time.Now()
	err := backend.Put(ctx, name, data)
	metrics.RecordTableWrite(backend.Name(), time.Since(start), len(data), err)
*/
package metrics
