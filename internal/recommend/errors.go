// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package recommend

import "errors"

var (
	// ErrDuplicateRoom is returned by AddRoom when the ID already exists.
	ErrDuplicateRoom = errors.New("room already exists")

	// ErrInvalidRoom is returned by AddRoom for a room without an ID.
	ErrInvalidRoom = errors.New("invalid room")

	// ErrPersist wraps a failed table write. The mutation was rolled back.
	ErrPersist = errors.New("persist room table")

	// ErrNotStarted is returned by mutations before Start has loaded the table.
	ErrNotStarted = errors.New("engine not started")
)
