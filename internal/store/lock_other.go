// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

//go:build !unix

package store

// lockFile is a no-op where flock is unavailable; the in-process write lock
// of the engine still serializes writers.
func lockFile(string) (func() error, error) {
	return func() error { return nil }, nil
}
