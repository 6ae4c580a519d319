// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package api serves the room recommendation engine over HTTP with a chi router.

# Routes

	POST   /recommend/              {"skills","position","top_n"?} -> {"recommended_rooms":[...]}
	POST   /add_room/               room attributes -> {"message":"Room '<name>' added successfully!"}
	DELETE /delete_room/{room_id}   -> {"message":"Room with ID <id> deleted successfully!"}
	                                   or {"message":"Room with ID <id> not found."}
	GET    /api/v1/health/live      liveness
	GET    /api/v1/health/ready     503 until the room table is loaded
	GET    /api/v1/rooms/status     engine status and counters
	GET    /metrics                 Prometheus exposition

The three room routes keep the paths and bodies of the original service. The
remaining routes and every error use the standard envelope:

	{"status":"error","error":{"code":"ROOM_EXISTS","message":"..."},"metadata":{...}}

# Errors

	400 INVALID_REQUEST     body is not JSON or too large
	400 VALIDATION_ERROR    missing or malformed attribute
	409 ROOM_EXISTS         add with an ID already in use
	429 TOO_MANY_REQUESTS   per-IP limit (httprate)
	500 PERSISTENCE_ERROR   table write failed; the change was rolled back
	503 SERVICE_UNAVAILABLE engine not started, or no query slot before the timeout

# Middleware

Every route gets request IDs, real IP extraction, panic recovery, CORS
(all origins by default) and Prometheus instrumentation. With auth_mode=jwt
the mutation routes additionally require a bearer token whose role the
Casbin policy allows.
*/
package api
