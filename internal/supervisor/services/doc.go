// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package services adapts roomrec components to suture's Serve(ctx) error
contract.

  - HTTPServerService runs an http.Server and drains it on cancellation.
  - RoomsService performs the initial room table load, then reloads the
    table on a schedule and sweeps the recommendation cache.

The events consumer already implements suture.Service and is added to the
tree directly.
*/
package services
