// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

//go:build integration

package events

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/models"
	"github.com/tomtom215/roomrec/internal/testinfra"
)

func TestNATSBus_RoundTrip(t *testing.T) {
	testinfra.RequireDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	nats, err := testinfra.NewNATSContainer(ctx)
	if err != nil {
		t.Fatalf("start nats: %v", err)
	}
	testinfra.Cleanup(t, nats.Container)

	bus, err := NewBus(Config{NATSURL: nats.URL, Topic: "rooms.test"}, logging.NewWatermillAdapter())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	defer bus.Close()

	if bus.Transport() != "nats" {
		t.Fatalf("Transport() = %q, want nats", bus.Transport())
	}

	got := make(chan models.RoomEvent, 1)
	consumer := NewConsumer(bus.Subscriber, bus.Topic(), func(_ context.Context, e models.RoomEvent) error {
		select {
		case got <- e:
		default:
		}
		return nil
	})
	serveCtx, stop := context.WithCancel(ctx)
	defer stop()
	go consumer.Serve(serveCtx) //nolint:errcheck

	pub := NewPublisher(bus.Publisher, bus.Topic(), Config{})
	want := models.RoomEvent{
		EventID:   "5c1c7d8e-1111-4000-8000-000000000001",
		Type:      models.RoomDeleted,
		RoomID:    "B",
		RoomCount: 1,
		Version:   2,
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if err := pub.PublishRoomEvent(ctx, want); err != nil {
			t.Fatalf("PublishRoomEvent() error = %v", err)
		}
		select {
		case e := <-got:
			if e.EventID != want.EventID || e.Type != want.Type {
				t.Errorf("received %+v, want %+v", e, want)
			}
			return
		case <-ticker.C:
		case <-ctx.Done():
			t.Fatal("timed out waiting for event over NATS")
		}
	}
}
