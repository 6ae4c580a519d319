// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend/", "200"))

	RecordAPIRequest("POST", "/recommend/", "200", 3*time.Millisecond)
	RecordAPIRequest("POST", "/recommend/", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend/", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	hits := testutil.ToFloat64(RecommendationCacheHits)
	misses := testutil.ToFloat64(RecommendationCacheMisses)

	RecordRecommendation(time.Millisecond, 4, false)
	RecordRecommendation(0, 4, true)
	RecordRecommendation(0, 0, true)

	if got := testutil.ToFloat64(RecommendationCacheHits) - hits; got != 2 {
		t.Errorf("cache hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RecommendationCacheMisses) - misses; got != 1 {
		t.Errorf("cache misses delta = %v, want 1", got)
	}
}

func TestRecordRoomMutation(t *testing.T) {
	tests := []struct {
		operation string
		outcome   string
	}{
		{"add", "added"},
		{"add", "duplicate"},
		{"delete", "deleted"},
		{"delete", "not_found"},
		{"delete", "persist_error"},
	}
	for _, tt := range tests {
		t.Run(tt.operation+"/"+tt.outcome, func(t *testing.T) {
			c := RoomMutations.WithLabelValues(tt.operation, tt.outcome)
			before := testutil.ToFloat64(c)
			RecordRoomMutation(tt.operation, tt.outcome)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordIndexFit(t *testing.T) {
	RecordIndexFit(10*time.Millisecond, 12, 40, 7, nil)

	if got := testutil.ToFloat64(RoomsIndexed); got != 12 {
		t.Errorf("rooms_indexed = %v, want 12", got)
	}
	if got := testutil.ToFloat64(IndexVocabularySize); got != 40 {
		t.Errorf("index_vocabulary_size = %v, want 40", got)
	}
	if got := testutil.ToFloat64(IndexVersion); got != 7 {
		t.Errorf("index_version = %v, want 7", got)
	}

	errs := testutil.ToFloat64(IndexFitErrors)
	RecordIndexFit(time.Millisecond, 99, 99, 99, errors.New("canceled"))
	if got := testutil.ToFloat64(IndexFitErrors) - errs; got != 1 {
		t.Errorf("index_fit_errors_total delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(RoomsIndexed); got != 12 {
		t.Errorf("rooms_indexed changed on failed fit: %v", got)
	}
}

func TestRecordTableIO(t *testing.T) {
	RecordTableWrite("memory", time.Millisecond, 2048, nil)
	if got := testutil.ToFloat64(TableBytes.WithLabelValues("memory", "write")); got != 2048 {
		t.Errorf("room_table_bytes = %v, want 2048", got)
	}

	before := testutil.ToFloat64(TableErrors.WithLabelValues("memory", "read"))
	RecordTableRead("memory", time.Millisecond, 0, errors.New("boom"))
	if got := testutil.ToFloat64(TableErrors.WithLabelValues("memory", "read")) - before; got != 1 {
		t.Errorf("room_table_errors_total delta = %v, want 1", got)
	}
}

func TestRoomEvents(t *testing.T) {
	ok := RoomEventsPublished.WithLabelValues("room.added", "success")
	failed := RoomEventsPublished.WithLabelValues("room.added", "failure")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordRoomEventPublished("room.added", nil)
	RecordRoomEventPublished("room.added", errors.New("nats down"))

	if testutil.ToFloat64(ok)-okBefore != 1 || testutil.ToFloat64(failed)-failedBefore != 1 {
		t.Error("room_events_published_total did not split by result")
	}

	consumed := RoomEventsConsumed.WithLabelValues("room.deleted")
	before := testutil.ToFloat64(consumed)
	RecordRoomEventConsumed("room.deleted")
	if testutil.ToFloat64(consumed)-before != 1 {
		t.Error("room_events_consumed_total not incremented")
	}
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("store-s3", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("store-s3")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
}

func TestUpdateUptime(t *testing.T) {
	UpdateUptime(time.Now().Add(-time.Minute))
	if got := testutil.ToFloat64(AppUptime); got < 59 {
		t.Errorf("app_uptime_seconds = %v, want >= 59", got)
	}
}
