// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/roomrec/internal/models"
)

// RoomStore is the authoritative room collection with its durable table.
// It is implemented by *store.Store.
type RoomStore interface {
	// Load replaces the collection with the durable table's rows. A missing
	// table yields an empty collection.
	Load(ctx context.Context) error

	// Save rewrites the durable table from the collection.
	Save(ctx context.Context) error

	Insert(room models.Room)
	Remove(id string) bool
	Contains(id string) bool

	// All returns a copy of the collection in collection order.
	All() []models.Room

	// Restore replaces the collection, used for rollback.
	Restore(rooms []models.Room)
}

// EventPublisher receives committed room changes.
type EventPublisher interface {
	PublishRoomEvent(ctx context.Context, event models.RoomEvent) error
}

// State describes whether the engine can produce non-empty results.
type State string

const (
	// StateUnfitted means no room contributes any term to the index.
	StateUnfitted State = "unfitted"
	// StateFitted means the index has a vocabulary.
	StateFitted State = "fitted"
)

// DeleteOutcome reports whether DeleteRoom removed anything.
type DeleteOutcome int

const (
	OutcomeNotFound DeleteOutcome = iota
	OutcomeDeleted
)

func (o DeleteOutcome) String() string {
	if o == OutcomeDeleted {
		return "deleted"
	}
	return "not_found"
}

// Status is a point-in-time view of the published snapshot.
type Status struct {
	// Started is false until the durable table was loaded by Start.
	Started bool `json:"started"`

	State State `json:"state"`

	// Rooms is the number of rooms in the published snapshot.
	Rooms int `json:"rooms"`

	// VocabularySize is the number of distinct index terms.
	VocabularySize int `json:"vocabulary_size"`

	// Version increases by one with every published snapshot.
	Version uint64 `json:"version"`

	// FittedAt is when the published index was built. Zero before Start.
	FittedAt time.Time `json:"fitted_at"`

	FitDurationMS int64 `json:"fit_duration_ms"`
}

// Metrics contains engine performance counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ErrorCount   int64 `json:"error_count"`
	RoomsAdded   int64 `json:"rooms_added"`
	RoomsDeleted int64 `json:"rooms_deleted"`
	FitCount     int64 `json:"fit_count"`

	// CacheSize is the current number of cached query results.
	CacheSize int `json:"cache_size"`
}
