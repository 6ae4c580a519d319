// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/tomtom215/roomrec/internal/cache"
	"github.com/tomtom215/roomrec/internal/metrics"
	"github.com/tomtom215/roomrec/internal/models"
	"github.com/tomtom215/roomrec/internal/recommend/ranking"
	"github.com/tomtom215/roomrec/internal/recommend/vectorspace"
)

// snapshot is an immutable generation of the collection and its index.
// rooms[i] is the document behind index row i.
type snapshot struct {
	rooms       []models.Room
	index       *vectorspace.Index
	version     uint64
	fittedAt    time.Time
	fitDuration time.Duration
}

// Engine ranks rooms against user profiles and applies room mutations.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	store  RoomStore

	current atomic.Pointer[snapshot]
	started atomic.Bool

	// writeMu serializes mutate, persist, refit and publish.
	writeMu sync.Mutex

	queries *semaphore.Weighted
	cache   *cache.LRUCache[[]models.Room]
	slowFit rate.Sometimes

	publisherMu sync.RWMutex
	publisher   EventPublisher

	// Metrics
	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
	roomsAdded   atomic.Int64
	roomsDeleted atomic.Int64
	fitCount     atomic.Int64
}

// NewEngine creates an engine over store. The engine answers queries with an
// empty result until Start loads the table.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store RoomStore, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("room store is required")
	}

	empty, err := vectorspace.Fit(context.Background(), nil)
	if err != nil {
		return nil, fmt.Errorf("fit empty index: %w", err)
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		store:   store,
		queries: semaphore.NewWeighted(cfg.MaxConcurrentQueries),
		slowFit: rate.Sometimes{Interval: time.Minute},
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRUCache[[]models.Room](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	e.current.Store(&snapshot{rooms: []models.Room{}, index: empty})

	return e, nil
}

// SetPublisher registers the receiver of room events. Nil disables events.
func (e *Engine) SetPublisher(p EventPublisher) {
	e.publisherMu.Lock()
	defer e.publisherMu.Unlock()
	e.publisher = p
}

// Start loads the durable table and publishes the first fitted snapshot.
// Calling it again reloads.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.Reload(ctx); err != nil {
		return err
	}
	e.started.Store(true)

	snap := e.current.Load()
	e.logger.Info().
		Int("rooms", len(snap.rooms)).
		Int("vocabulary", snap.index.VocabularySize()).
		Dur("fit_duration", snap.fitDuration).
		Msg("recommendation engine started")
	return nil
}

// Started reports whether Start completed.
func (e *Engine) Started() bool {
	return e.started.Load()
}

// Reload re-reads the durable table and refits. On a read error the
// published snapshot is kept.
func (e *Engine) Reload(ctx context.Context) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if err := e.store.Load(ctx); err != nil {
		e.errorCount.Add(1)
		return fmt.Errorf("load rooms: %w", err)
	}
	// The store already holds the new rows; the index must follow them.
	if _, err := e.refit(context.WithoutCancel(ctx)); err != nil {
		e.errorCount.Add(1)
		return err
	}
	return nil
}

// Recommend returns up to topN rooms most similar to the profile built from
// skills and position, best first. topN <= 0 selects Config.DefaultTopN;
// values above Config.MaxTopN are capped. Rooms sharing no term with the
// profile are never returned, so the result may be shorter than topN.
func (e *Engine) Recommend(ctx context.Context, skills, position string, topN int) ([]models.Room, error) {
	start := time.Now()
	e.requestCount.Add(1)

	topN = e.clampTopN(topN)
	snap := e.current.Load()

	key := cacheKey(snap.version, topN, skills, position)
	if e.cache != nil {
		if rooms, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			metrics.RecordRecommendation(0, len(rooms), true)
			return cloneRooms(rooms), nil
		}
		e.cacheMisses.Add(1)
	}

	if err := e.queries.Acquire(ctx, 1); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("wait for query slot: %w", err)
	}
	defer e.queries.Release(1)

	query := snap.index.Project(models.QueryDocument(skills, position))
	matches := ranking.Rank(query, snap.index, topN)

	rooms := make([]models.Room, len(matches))
	for i, m := range matches {
		rooms[i] = snap.rooms[m.Row]
	}

	if e.cache != nil {
		e.cache.Add(key, cloneRooms(rooms))
	}

	metrics.RecordRecommendation(time.Since(start), len(rooms), false)
	e.logger.Debug().
		Int("top_n", topN).
		Int("returned", len(rooms)).
		Uint64("version", snap.version).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return rooms, nil
}

// AddRoom validates, stores, persists and indexes room. The ID must be
// non-empty and unused. If the table write fails the collection is rolled
// back, the published snapshot is unchanged, and the error wraps ErrPersist.
//
//nolint:gocritic // hugeParam: room passed by value, it is copied into the store
func (e *Engine) AddRoom(ctx context.Context, room models.Room) error {
	if !e.started.Load() {
		return ErrNotStarted
	}

	room.ID = strings.TrimSpace(room.ID)
	if room.ID == "" {
		metrics.RecordRoomMutation("add", "invalid")
		return fmt.Errorf("%w: room ID is required", ErrInvalidRoom)
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.store.Contains(room.ID) {
		metrics.RecordRoomMutation("add", "duplicate")
		return fmt.Errorf("%w: %s", ErrDuplicateRoom, room.ID)
	}

	prev := e.store.All()
	room.NormalizeLineEndings()
	room.Recompose()
	e.store.Insert(room)

	if err := e.persist(ctx, prev, "add"); err != nil {
		return err
	}

	snap, err := e.refit(context.WithoutCancel(ctx))
	if err != nil {
		e.errorCount.Add(1)
		return err
	}

	e.roomsAdded.Add(1)
	metrics.RecordRoomMutation("add", "added")
	e.logger.Info().
		Str("room_id", room.ID).
		Str("name", room.Name).
		Int("rooms", len(snap.rooms)).
		Msg("room added")

	e.publish(ctx, models.RoomAdded, room.ID, room.Name, snap)
	return nil
}

// DeleteRoom removes every room with the given ID, persists and refits.
// An unknown ID returns OutcomeNotFound with a nil error. If the table write
// fails the collection is rolled back and the error wraps ErrPersist.
func (e *Engine) DeleteRoom(ctx context.Context, id string) (DeleteOutcome, error) {
	if !e.started.Load() {
		return OutcomeNotFound, ErrNotStarted
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	prev := e.store.All()
	if !e.store.Remove(id) {
		metrics.RecordRoomMutation("delete", "not_found")
		return OutcomeNotFound, nil
	}

	if err := e.persist(ctx, prev, "delete"); err != nil {
		return OutcomeNotFound, err
	}

	snap, err := e.refit(context.WithoutCancel(ctx))
	if err != nil {
		e.errorCount.Add(1)
		return OutcomeDeleted, err
	}

	e.roomsDeleted.Add(1)
	metrics.RecordRoomMutation("delete", "deleted")
	e.logger.Info().
		Str("room_id", id).
		Int("rooms", len(snap.rooms)).
		Msg("room deleted")

	e.publish(ctx, models.RoomDeleted, id, "", snap)
	return OutcomeDeleted, nil
}

// persist saves the table, restoring prev on failure. Must hold writeMu.
func (e *Engine) persist(ctx context.Context, prev []models.Room, op string) error {
	if err := e.store.Save(ctx); err != nil {
		e.store.Restore(prev)
		e.errorCount.Add(1)
		metrics.RecordRoomMutation(op, "persist_error")
		e.logger.Error().Err(err).Str("operation", op).Msg("room table write failed, mutation rolled back")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// refit builds a new index over the store's current rooms and publishes it.
// Must hold writeMu.
func (e *Engine) refit(ctx context.Context) (*snapshot, error) {
	rooms := e.store.All()
	docs := make([]string, len(rooms))
	for i := range rooms {
		rooms[i].Recompose()
		docs[i] = rooms[i].CombinedFeatures
	}

	start := time.Now()
	idx, err := vectorspace.Fit(ctx, docs)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordIndexFit(elapsed, 0, 0, 0, err)
		return nil, fmt.Errorf("fit index: %w", err)
	}

	prev := e.current.Load()
	snap := &snapshot{
		rooms:       rooms,
		index:       idx,
		version:     prev.version + 1,
		fittedAt:    time.Now(),
		fitDuration: elapsed,
	}
	e.current.Store(snap)
	e.fitCount.Add(1)

	metrics.RecordIndexFit(elapsed, idx.Len(), idx.VocabularySize(), snap.version, nil)

	if e.config.SlowFitThreshold > 0 && elapsed > e.config.SlowFitThreshold {
		e.slowFit.Do(func() {
			e.logger.Warn().
				Dur("fit_duration", elapsed).
				Dur("threshold", e.config.SlowFitThreshold).
				Int("rooms", len(rooms)).
				Msg("index fit is slow; every mutation rebuilds the full index")
		})
	}

	return snap, nil
}

func (e *Engine) publish(ctx context.Context, typ models.RoomEventType, roomID, roomName string, snap *snapshot) {
	e.publisherMu.RLock()
	p := e.publisher
	e.publisherMu.RUnlock()
	if p == nil {
		return
	}

	event := models.RoomEvent{
		EventID:    uuid.NewString(),
		Type:       typ,
		RoomID:     roomID,
		RoomName:   roomName,
		RoomCount:  len(snap.rooms),
		Version:    snap.version,
		OccurredAt: time.Now().UTC(),
	}
	// The mutation is committed; a lost event is logged, not returned.
	if err := p.PublishRoomEvent(context.WithoutCancel(ctx), event); err != nil {
		e.logger.Warn().Err(err).
			Str("event_type", string(typ)).
			Str("room_id", roomID).
			Msg("failed to publish room event")
	}
}

func (e *Engine) clampTopN(topN int) int {
	if topN <= 0 {
		return e.config.DefaultTopN
	}
	if topN > e.config.MaxTopN {
		return e.config.MaxTopN
	}
	return topN
}

// Status returns the state of the published snapshot.
func (e *Engine) Status() Status {
	snap := e.current.Load()

	state := StateUnfitted
	if snap.index.VocabularySize() > 0 {
		state = StateFitted
	}

	return Status{
		Started:        e.started.Load(),
		State:          state,
		Rooms:          len(snap.rooms),
		VocabularySize: snap.index.VocabularySize(),
		Version:        snap.version,
		FittedAt:       snap.fittedAt,
		FitDurationMS:  snap.fitDuration.Milliseconds(),
	}
}

// Rooms returns a copy of the published collection.
func (e *Engine) Rooms() []models.Room {
	return cloneRooms(e.current.Load().rooms)
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ErrorCount:   e.errorCount.Load(),
		RoomsAdded:   e.roomsAdded.Load(),
		RoomsDeleted: e.roomsDeleted.Load(),
		FitCount:     e.fitCount.Load(),
	}
	if e.cache != nil {
		m.CacheSize = e.cache.Len()
	}
	return m
}

// PurgeCache drops expired cache entries and returns how many were removed.
func (e *Engine) PurgeCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// cacheKey includes the snapshot version, so a refit invalidates every
// earlier entry without touching the cache.
func cacheKey(version uint64, topN int, skills, position string) string {
	var b strings.Builder
	b.Grow(len(skills) + len(position) + 24)
	b.WriteString(strconv.FormatUint(version, 10))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(topN))
	b.WriteByte(0)
	b.WriteString(skills)
	b.WriteByte(0)
	b.WriteString(position)
	return b.String()
}

func cloneRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	copy(out, rooms)
	return out
}
