// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/roomrec/internal/models"
	"github.com/tomtom215/roomrec/internal/recommend"
	"github.com/tomtom215/roomrec/internal/store"
)

// newTestEngine starts an engine over an in-memory table holding rooms.
func newTestEngine(t *testing.T, rooms ...models.Room) (*recommend.Engine, *store.MemoryBackend) {
	t.Helper()
	ctx := context.Background()

	backend := store.NewMemoryBackend()
	if len(rooms) > 0 {
		data, err := store.EncodeTable(rooms)
		if err != nil {
			t.Fatalf("EncodeTable() error = %v", err)
		}
		if err := backend.Put(ctx, store.DefaultTable, data); err != nil {
			t.Fatal(err)
		}
	}

	cfg := recommend.DefaultConfig()
	engine, err := recommend.NewEngine(cfg, store.New(backend, store.Config{}), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if err := engine.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return engine, backend
}

func newTestServer(t *testing.T, rooms RoomService) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(rooms, HandlerConfig{Version: "test"}), NewChiMiddleware(cfg), nil, nil).SetupChi()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatal(err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func addRoomBody(id, name, skills, position, tracks string) map[string]interface{} {
	return map[string]interface{}{
		"room_id":      id,
		"name":         name,
		"skills":       skills,
		"position":     position,
		"tracks":       tracks,
		"createdAt":    "2026-01-01",
		"members":      3,
		"coverPicture": "https://example.com/" + id + ".png",
		"desc":         name + " room",
	}
}
