// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package events carries committed room changes (room.added, room.deleted) over
Watermill.

Transport is chosen by configuration:

  - in-process: a Watermill GoChannel, when no NATS URL is configured
  - NATS: core NATS through watermill-nats, for fan-out to other services

Publisher implements recommend.EventPublisher. Publishing goes through a
circuit breaker so an unreachable broker costs one fast failure per mutation
instead of a connect timeout. Events are best effort: the engine has already
committed the change when it publishes.

Events carry the publishing instance in Source (Config.Source). Consumer is
a suture service that subscribes to the topic, logs and counts each event,
then hands it to an optional Handler; cmd/server uses that to reload the
table when another replica changed it.

Payloads are JSON (goccy/go-json) encodings of models.RoomEvent; the Watermill
message UUID is the event ID and the "type" metadata key holds the event type.
*/
package events
