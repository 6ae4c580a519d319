// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/metrics"
	"github.com/tomtom215/roomrec/internal/models"
)

// DefaultTable is the document name used when Config.Table is empty.
const DefaultTable = "rooms.csv"

// Config configures a Store.
type Config struct {
	// Table is the document name inside the backend.
	Table string

	// Compression applies to Save. Load accepts any supported encoding.
	Compression Compression

	// MaxTableSize caps the decompressed table Load will accept.
	// Zero means DefaultMaxTableSize.
	MaxTableSize int64
}

// Store is the in-memory room collection backed by a durable table.
//
// Collection order is insertion order: rows loaded from the table first, then
// rooms appended by Insert. Remove keeps the relative order of the rest.
type Store struct {
	mu    sync.RWMutex
	rooms []models.Room

	backend Backend
	cfg     Config
	logger  zerolog.Logger
}

// New creates an empty Store over backend. Call Load to read the table.
func New(backend Backend, cfg Config) *Store {
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Compression == "" {
		cfg.Compression = CompressionNone
	}
	if cfg.MaxTableSize <= 0 {
		cfg.MaxTableSize = DefaultMaxTableSize
	}
	return &Store{
		rooms:   []models.Room{},
		backend: backend,
		cfg:     cfg,
		logger:  logging.WithComponent("store"),
	}
}

// Load replaces the collection with the table's rows. A missing table yields
// an empty collection. Rows without an ID and repeated IDs are skipped with a
// warning; the first occurrence of an ID wins.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	data, err := s.backend.Get(ctx, s.cfg.Table)
	if errors.Is(err, ErrNotFound) {
		metrics.RecordTableRead(s.backend.Name(), time.Since(start), 0, nil)
		s.logger.Info().Str("table", s.cfg.Table).Msg("Room table not found, starting with an empty collection")
		s.Restore(nil)
		return nil
	}
	metrics.RecordTableRead(s.backend.Name(), time.Since(start), len(data), err)
	if err != nil {
		return fmt.Errorf("read room table %q: %w", s.cfg.Table, err)
	}

	plain, encoding, err := decompress(data, s.cfg.MaxTableSize)
	if err != nil {
		return fmt.Errorf("read room table %q: %w", s.cfg.Table, err)
	}
	rows, err := DecodeTable(plain)
	if err != nil {
		return fmt.Errorf("read room table %q: %w", s.cfg.Table, err)
	}

	rooms := make([]models.Room, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i := range rows {
		id := rows[i].ID
		if id == "" {
			s.logger.Warn().Int("row", i+1).Msg("Skipping room without ID")
			continue
		}
		if _, dup := seen[id]; dup {
			s.logger.Warn().Str("room_id", id).Int("row", i+1).Msg("Skipping duplicate room ID")
			continue
		}
		seen[id] = struct{}{}
		rooms = append(rooms, rows[i])
	}

	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()

	s.logger.Info().
		Str("table", s.cfg.Table).
		Str("backend", s.backend.Name()).
		Str("encoding", string(encoding)).
		Int("rooms", len(rooms)).
		Dur("duration", time.Since(start)).
		Msg("Room table loaded")
	return nil
}

// Save writes the whole collection to the table, replacing it.
func (s *Store) Save(ctx context.Context) error {
	rooms := s.All()

	plain, err := EncodeTable(rooms)
	if err != nil {
		return fmt.Errorf("encode room table: %w", err)
	}
	data, err := compress(s.cfg.Compression, plain)
	if err != nil {
		return err
	}

	start := time.Now()
	err = s.backend.Put(ctx, s.cfg.Table, data)
	metrics.RecordTableWrite(s.backend.Name(), time.Since(start), len(data), err)
	if err != nil {
		return fmt.Errorf("write room table %q: %w", s.cfg.Table, err)
	}

	s.logger.Debug().
		Str("table", s.cfg.Table).
		Int("rooms", len(rooms)).
		Int("bytes", len(data)).
		Msg("Room table saved")
	return nil
}

// Insert appends room to the collection. The caller is responsible for ID
// uniqueness; see Contains.
func (s *Store) Insert(room models.Room) {
	room.Recompose()

	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()
}

// Remove deletes every room with the given ID and reports whether any existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Room, 0, len(s.rooms))
	for i := range s.rooms {
		if s.rooms[i].ID != id {
			kept = append(kept, s.rooms[i])
		}
	}
	if len(kept) == len(s.rooms) {
		return false
	}
	s.rooms = kept
	return true
}

// Contains reports whether a room with the given ID exists.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return true
		}
	}
	return false
}

// Get returns the room with the given ID.
func (s *Store) Get(id string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return s.rooms[i], true
		}
	}
	return models.Room{}, false
}

// All returns a copy of the collection in collection order.
func (s *Store) All() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Len returns the number of rooms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Restore replaces the collection with rooms, e.g. to roll back a mutation
// whose Save failed.
func (s *Store) Restore(rooms []models.Room) {
	out := make([]models.Room, len(rooms))
	copy(out, rooms)

	s.mu.Lock()
	s.rooms = out
	s.mu.Unlock()
}

// Backend returns the underlying backend name.
func (s *Store) Backend() string {
	return s.backend.Name()
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
