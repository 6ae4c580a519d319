// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"context"
	"errors"
	"testing"
)

func TestBadgerBackend_InMemory(t *testing.T) {
	ctx := context.Background()
	b, err := OpenBadgerBackend("")
	if err != nil {
		t.Fatalf("OpenBadgerBackend() error = %v", err)
	}
	defer func() { _ = b.Close() }()

	if _, err := b.Get(ctx, "rooms.csv"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() before Put error = %v, want ErrNotFound", err)
	}
	if err := b.Put(ctx, "rooms.csv", []byte("ID\nA\n")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := b.Get(ctx, "rooms.csv")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "ID\nA\n" {
		t.Errorf("Get() = %q", got)
	}
}

func TestBadgerBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBadgerBackend(dir)
	if err != nil {
		t.Fatalf("OpenBadgerBackend() error = %v", err)
	}
	s := New(b, Config{Compression: CompressionLZ4})
	for _, r := range sampleRooms() {
		s.Insert(r)
	}
	if err := s.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	b, err = OpenBadgerBackend(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = b.Close() }()

	reloaded := New(b, Config{})
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reloaded.Len())
	}
}
