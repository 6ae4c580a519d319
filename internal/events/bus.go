// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
)

// DefaultTopic is the topic (NATS subject) room events are published on.
const DefaultTopic = "rooms.events"

// Config configures the event bus.
type Config struct {
	// NATSURL selects NATS when non-empty; otherwise events stay in process.
	NATSURL string

	// Topic defaults to DefaultTopic.
	Topic string

	// BufferSize is the per-subscriber buffer of the in-process channel.
	// Default: 256
	BufferSize int64

	// MaxReconnects for NATS; -1 retries forever. Default: -1
	MaxReconnects int

	// ReconnectWait between NATS reconnect attempts. Default: 2s
	ReconnectWait time.Duration

	// BreakerFailures consecutive publish failures open the breaker. Default: 5
	BreakerFailures uint32

	// BreakerTimeout is how long the breaker stays open. Default: 30s
	BreakerTimeout time.Duration

	// Source identifies this instance on published events so replicas can
	// ignore their own changes.
	Source string
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.BufferSize <= 0 {
		c.BufferSize = 256
	}
	if c.MaxReconnects == 0 {
		c.MaxReconnects = -1
	}
	if c.ReconnectWait <= 0 {
		c.ReconnectWait = 2 * time.Second
	}
	return c
}

// Bus pairs a Watermill publisher and subscriber on one transport.
type Bus struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber

	topic     string
	transport string
	shared    bool
}

// NewBus creates the transport described by cfg.
func NewBus(cfg Config, logger watermill.LoggerAdapter) (*Bus, error) {
	cfg = cfg.withDefaults()

	if cfg.NATSURL == "" {
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.BufferSize,
		}, logger)
		return &Bus{Publisher: ch, Subscriber: ch, topic: cfg.Topic, transport: "gochannel", shared: true}, nil
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("roomrec"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
	}

	// Room events are notifications, not a replayable log, so core NATS is
	// enough and no stream has to be provisioned.
	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.NATSURL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create nats publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.NATSURL,
		SubscribersCount: 1,
		CloseTimeout:     5 * time.Second,
		AckWaitTimeout:   30 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create nats subscriber: %w", err)
	}

	return &Bus{Publisher: pub, Subscriber: sub, topic: cfg.Topic, transport: "nats"}, nil
}

// Topic returns the configured topic.
func (b *Bus) Topic() string { return b.topic }

// Transport returns "gochannel" or "nats".
func (b *Bus) Transport() string { return b.transport }

// Close closes the publisher and subscriber. The GoChannel is both, so it is
// closed once.
func (b *Bus) Close() error {
	pubErr := b.Publisher.Close()
	if b.shared {
		return pubErr
	}
	return errors.Join(pubErr, b.Subscriber.Close())
}
