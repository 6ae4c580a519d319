// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/roomrec/internal/breaker"
	"github.com/tomtom215/roomrec/internal/metrics"
	"github.com/tomtom215/roomrec/internal/models"
)

// MetadataType is the message metadata key holding the event type.
const MetadataType = "type"

// Publisher publishes room events with circuit breaker protection.
type Publisher struct {
	publisher message.Publisher
	topic     string
	source    string
	cb        *gobreaker.CircuitBreaker[struct{}]
}

// NewPublisher wraps pub. The breaker is named "events-publish".
func NewPublisher(pub message.Publisher, topic string, cfg Config) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		publisher: pub,
		topic:     topic,
		source:    cfg.Source,
		cb: breaker.New[struct{}](breaker.Config{
			Name:             "events-publish",
			FailureThreshold: cfg.BreakerFailures,
			Timeout:          cfg.BreakerTimeout,
		}),
	}
}

// PublishRoomEvent encodes and publishes event, stamping the configured
// source when the event has none.
func (p *Publisher) PublishRoomEvent(ctx context.Context, event models.RoomEvent) error {
	if event.Source == "" {
		event.Source = p.source
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode room event: %w", err)
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set(MetadataType, string(event.Type))
	msg.SetContext(ctx)

	_, err = p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.publisher.Publish(p.topic, msg)
	})
	metrics.RecordRoomEventPublished(string(event.Type), err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// State returns the breaker state, for status reporting.
func (p *Publisher) State() string {
	return p.cb.State().String()
}

// DecodeRoomEvent parses a message produced by PublishRoomEvent.
func DecodeRoomEvent(msg *message.Message) (models.RoomEvent, error) {
	var event models.RoomEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return event, fmt.Errorf("decode room event %s: %w", msg.UUID, err)
	}
	return event, nil
}
