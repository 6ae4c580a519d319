// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/roomrec/internal/models"
)

func ids(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i := range rooms {
		out[i] = rooms[i].ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_LoadMissingTable(t *testing.T) {
	s := New(NewMemoryBackend(), Config{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_LoadSkipsDuplicatesAndBlankIDs(t *testing.T) {
	backend := NewMemoryBackend()
	table := "ID,Name,Skills\nA,first,go\n,blank,x\nB,b,rust\nA,second,java\n"
	if err := backend.Put(context.Background(), DefaultTable, []byte(table)); err != nil {
		t.Fatal(err)
	}

	s := New(backend, Config{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := ids(s.All()); !equalStrings(got, []string{"A", "B"}) {
		t.Errorf("IDs = %v, want [A B]", got)
	}
	if r, _ := s.Get("A"); r.Name != "first" {
		t.Errorf("Get(A).Name = %q, want first occurrence", r.Name)
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	backend := NewMemoryBackend()
	_ = backend.Put(context.Background(), DefaultTable, []byte("Name\nx\n"))

	s := New(backend, Config{})
	if err := s.Load(context.Background()); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("Load() error = %v, want ErrMalformedTable", err)
	}
}

func TestStore_InsertRemoveOrder(t *testing.T) {
	s := New(NewMemoryBackend(), Config{})
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Insert(models.Room{ID: id, Skills: "go"})
	}

	if !s.Remove("B") {
		t.Error("Remove(B) = false, want true")
	}
	if s.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	if got := ids(s.All()); !equalStrings(got, []string{"A", "C", "D"}) {
		t.Errorf("IDs = %v, want [A C D]", got)
	}
	if !s.Contains("C") || s.Contains("B") {
		t.Error("Contains() inconsistent with collection")
	}

	r, ok := s.Get("A")
	if !ok || r.CombinedFeatures != "go  " {
		t.Errorf("Get(A) = %+v, %v; want recomposed room", r, ok)
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(string(c), func(t *testing.T) {
			ctx := context.Background()
			backend := NewMemoryBackend()

			s := New(backend, Config{Compression: c})
			for _, r := range sampleRooms() {
				s.Insert(r)
			}
			if err := s.Save(ctx); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			// A reader configured without compression still decodes it.
			reloaded := New(backend, Config{})
			if err := reloaded.Load(ctx); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := ids(reloaded.All()); !equalStrings(got, []string{"A", "B"}) {
				t.Errorf("IDs = %v, want [A B]", got)
			}
			if r, _ := reloaded.Get("B"); r.Description != "sparks\nand \"steel\"" {
				t.Errorf("Description = %q, quoting not preserved", r.Description)
			}
		})
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := New(NewMemoryBackend(), Config{})
	s.Insert(models.Room{ID: "A", Name: "orig"})

	all := s.All()
	all[0].Name = "changed"

	if r, _ := s.Get("A"); r.Name != "orig" {
		t.Error("mutating All() result changed the store")
	}
}

func TestStore_Restore(t *testing.T) {
	s := New(NewMemoryBackend(), Config{})
	s.Insert(models.Room{ID: "A"})
	prev := s.All()

	s.Insert(models.Room{ID: "B"})
	s.Restore(prev)

	if got := ids(s.All()); !equalStrings(got, []string{"A"}) {
		t.Errorf("IDs after Restore = %v, want [A]", got)
	}
}

type failingBackend struct {
	*MemoryBackend
	putErr error
}

func (b *failingBackend) Put(ctx context.Context, name string, data []byte) error {
	if b.putErr != nil {
		return b.putErr
	}
	return b.MemoryBackend.Put(ctx, name, data)
}

func TestStore_SaveError(t *testing.T) {
	errDisk := errors.New("disk full")
	s := New(&failingBackend{MemoryBackend: NewMemoryBackend(), putErr: errDisk}, Config{})
	s.Insert(models.Room{ID: "A"})

	if err := s.Save(context.Background()); !errors.Is(err, errDisk) {
		t.Errorf("Save() error = %v, want wrapped errDisk", err)
	}
}

func TestMemoryBackend_CopiesData(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	data := []byte("abc")
	_ = b.Put(ctx, "t", data)
	data[0] = 'x'

	got, err := b.Get(ctx, "t")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Errorf("Get() = %q, want abc", got)
	}

	if _, err := b.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), BackendConfig{Kind: "floppy"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(floppy) error = %v, want ErrUnknownBackend", err)
	}
}
