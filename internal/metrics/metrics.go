// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to rank rooms for one profile",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of rooms returned per recommendation",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 50},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// Collection and Index Metrics
	RoomMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_mutations_total",
			Help: "Room add/delete operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RoomsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rooms_indexed",
			Help: "Number of rooms in the published index",
		},
	)

	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_size",
			Help: "Number of distinct terms in the published index",
		},
	)

	IndexVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_version",
			Help: "Monotonic version of the published index",
		},
	)

	IndexFitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "index_fit_duration_seconds",
			Help:    "Time to fit the TF-IDF index over the collection",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	IndexFitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "index_fit_errors_total",
			Help: "Total number of failed index fits",
		},
	)

	// Table Persistence Metrics
	TableIODuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "room_table_io_duration_seconds",
			Help:    "Duration of room table reads and writes",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	TableBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "room_table_bytes",
			Help: "Size of the last room table read or written",
		},
		[]string{"backend", "operation"},
	)

	TableErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_table_errors_total",
			Help: "Total number of failed room table reads and writes",
		},
		[]string{"backend", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Room Event Metrics
	RoomEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_events_published_total",
			Help: "Room events published by type and result",
		},
		[]string{"type", "result"},
	)

	RoomEventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_events_consumed_total",
			Help: "Room events received by the audit consumer",
		},
		[]string{"type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one ranking request. Cache hits count toward
// results but not duration, which measures ranking work only.
func RecordRecommendation(duration time.Duration, results int, cacheHit bool) {
	RecommendationResults.Observe(float64(results))
	if cacheHit {
		RecommendationCacheHits.Inc()
		return
	}
	RecommendationCacheMisses.Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordRoomMutation counts an add or delete. Outcome is a short label such
// as "added", "deleted", "not_found", "duplicate", "invalid" or "persist_error".
func RecordRoomMutation(operation, outcome string) {
	RoomMutations.WithLabelValues(operation, outcome).Inc()
}

// RecordIndexFit records a fit. On success the published-index gauges move
// to the new values.
func RecordIndexFit(duration time.Duration, rooms, vocabulary int, version uint64, err error) {
	if err != nil {
		IndexFitErrors.Inc()
		return
	}
	IndexFitDuration.Observe(duration.Seconds())
	RoomsIndexed.Set(float64(rooms))
	IndexVocabularySize.Set(float64(vocabulary))
	IndexVersion.Set(float64(version))
}

// RecordTableRead records a room table read.
func RecordTableRead(backend string, duration time.Duration, bytes int, err error) {
	recordTableIO(backend, "read", duration, bytes, err)
}

// RecordTableWrite records a room table write.
func RecordTableWrite(backend string, duration time.Duration, bytes int, err error) {
	recordTableIO(backend, "write", duration, bytes, err)
}

func recordTableIO(backend, operation string, duration time.Duration, bytes int, err error) {
	TableIODuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		TableErrors.WithLabelValues(backend, operation).Inc()
		return
	}
	TableBytes.WithLabelValues(backend, operation).Set(float64(bytes))
}

// SetCircuitBreakerState sets the state gauge of the named breaker.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordRoomEventPublished counts a publish attempt.
func RecordRoomEventPublished(eventType string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	RoomEventsPublished.WithLabelValues(eventType, result).Inc()
}

// RecordRoomEventConsumed counts an event handled by the consumer.
func RecordRoomEventConsumed(eventType string) {
	RoomEventsConsumed.WithLabelValues(eventType).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
