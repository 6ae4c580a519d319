// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package models

import "time"

// RoomEventType identifies a committed change to the room collection.
type RoomEventType string

const (
	// RoomAdded is emitted after a room was persisted and indexed.
	RoomAdded RoomEventType = "room.added"
	// RoomDeleted is emitted after a room was removed and the table rewritten.
	RoomDeleted RoomEventType = "room.deleted"
)

// RoomEvent describes a committed change.
type RoomEvent struct {
	EventID    string        `json:"event_id"`
	Type       RoomEventType `json:"type"`
	RoomID     string        `json:"room_id"`
	RoomName   string        `json:"room_name,omitempty"`
	RoomCount  int           `json:"room_count"`
	Version    uint64        `json:"index_version"`
	OccurredAt time.Time     `json:"occurred_at"`

	// Source names the instance that committed the change.
	Source string `json:"source,omitempty"`
}
