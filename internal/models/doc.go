// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package models defines the data structures shared across roomrec.

Key Components:

  - Room: a recommendable community room and its descriptive attributes
  - Compose / QueryDocument: derivation of the searchable text of a room or a user profile
  - RoomEvent: change notification emitted after a committed add or delete
  - APIResponse, APIError, Metadata: the HTTP response envelope

Models carry no behaviour beyond pure derivations, so every package
(store, recommend, events, api) can depend on them without cycles.
*/
package models
