// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/metrics"
	"github.com/tomtom215/roomrec/internal/models"
)

// Handler is called for every decoded event.
type Handler func(ctx context.Context, event models.RoomEvent) error

// Consumer logs room events from the bus. It implements suture.Service.
type Consumer struct {
	subscriber message.Subscriber
	topic      string
	handler    Handler
	logger     zerolog.Logger
}

// NewConsumer subscribes to topic when served. handler may be nil.
func NewConsumer(sub message.Subscriber, topic string, handler Handler) *Consumer {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Consumer{
		subscriber: sub,
		topic:      topic,
		handler:    handler,
		logger:     logging.WithComponent("events-consumer"),
	}
}

// Serve consumes until ctx is canceled. A closed subscription returns an
// error so the supervisor restarts the service.
func (c *Consumer) Serve(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, err)
	}

	c.logger.Info().Str("topic", c.topic).Msg("Room event consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription to %s closed", c.topic)
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	event, err := DecodeRoomEvent(msg)
	if err != nil {
		// A payload that cannot be decoded never will be; drop it.
		c.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping undecodable room event")
		msg.Ack()
		return
	}

	metrics.RecordRoomEventConsumed(string(event.Type))
	c.logger.Info().
		Str("event_id", event.EventID).
		Str("type", string(event.Type)).
		Str("room_id", event.RoomID).
		Int("room_count", event.RoomCount).
		Uint64("index_version", event.Version).
		Time("occurred_at", event.OccurredAt).
		Msg("Room event")

	if c.handler != nil {
		if err := c.handler(logging.WithCorrelationID(ctx, event.EventID), event); err != nil {
			c.logger.Warn().Err(err).Str("event_id", event.EventID).Msg("Room event handler failed")
			msg.Nack()
			return
		}
	}
	msg.Ack()
}

// String implements fmt.Stringer for suture logging.
func (c *Consumer) String() string {
	return "events-consumer"
}
