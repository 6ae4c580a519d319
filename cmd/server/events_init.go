// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/roomrec/internal/config"
	"github.com/tomtom215/roomrec/internal/events"
	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/models"
	"github.com/tomtom215/roomrec/internal/recommend"
)

// EventComponents holds the room event bus and its endpoints.
type EventComponents struct {
	Bus       *events.Bus
	Publisher *events.Publisher
	Consumer  *events.Consumer
}

// reloader is the part of the engine a replica event triggers.
type reloader interface {
	Reload(ctx context.Context) error
}

// initEvents connects the engine to the event bus. Returns nil when events
// are disabled.
func initEvents(cfg *config.Config, engine *recommend.Engine, instanceID string) (*EventComponents, error) {
	if !cfg.Events.Enabled {
		logging.Info().Msg("Room events disabled (EVENTS_ENABLED=false)")
		return nil, nil
	}

	ecfg := events.Config{
		NATSURL:         cfg.Events.NATSURL,
		Topic:           cfg.Events.Topic,
		BreakerFailures: cfg.Events.BreakerFailures,
		BreakerTimeout:  cfg.Events.BreakerTimeout,
		Source:          instanceID,
	}
	bus, err := events.NewBus(ecfg, logging.NewWatermillAdapter())
	if err != nil {
		return nil, fmt.Errorf("create event bus: %w", err)
	}

	pub := events.NewPublisher(bus.Publisher, bus.Topic(), ecfg)
	engine.SetPublisher(pub)

	consumer := events.NewConsumer(bus.Subscriber, bus.Topic(), replicaReloadHandler(engine, instanceID))

	logging.Info().
		Str("transport", bus.Transport()).
		Str("topic", bus.Topic()).
		Msg("Room events enabled")

	return &EventComponents{Bus: bus, Publisher: pub, Consumer: consumer}, nil
}

// replicaReloadHandler reloads the table when another instance changed it.
// Events from this instance are already reflected in the index. A failed
// reload is logged and left to the scheduled reload.
func replicaReloadHandler(engine reloader, self string) events.Handler {
	logger := logging.WithComponent("replica-sync")
	return func(ctx context.Context, event models.RoomEvent) error {
		if event.Source == "" || event.Source == self {
			return nil
		}
		if err := engine.Reload(ctx); err != nil {
			logger.Warn().Err(err).
				Str("source", event.Source).
				Str("event_id", event.EventID).
				Msg("Reload after replica change failed")
			return nil
		}
		logger.Info().
			Str("source", event.Source).
			Str("type", string(event.Type)).
			Str("room_id", event.RoomID).
			Msg("Reloaded rooms after replica change")
		return nil
	}
}
