// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Command roomrec serves room recommendations for a community platform.

Running the binary without arguments starts the server:

 1. Configuration: koanf defaults, config.yaml, then environment variables
 2. Logging: zerolog, JSON or console
 3. Store: the room table on local disk, memory, BadgerDB, MinIO or S3
 4. Engine: TF-IDF index over the rooms' skills and positions
 5. Events (optional): room.added / room.deleted on an in-process channel
    or NATS; changes from other replicas trigger a reload
 6. Auth (optional): JWT bearer tokens checked against a Casbin policy on
    the add and delete routes
 7. Supervisor tree and HTTP server

	roomrec
	├── data-layer
	│   └── rooms
	├── messaging-layer
	│   └── events-consumer
	└── api-layer
	    └── http-server

Until the first table load succeeds, /api/v1/health/ready answers 503 and the
rooms service is retried with backoff.

# Subcommands

	roomrec token --user alice --role editor   # print a signed bearer token
	roomrec version

# Examples

Local CSV table, no auth:

	STORE_DIR=/var/lib/roomrec ./roomrec

Shared S3 table across replicas, with NATS events and JWT:

	export STORE_BACKEND=s3 STORE_BUCKET=rooms STORE_COMPRESSION=zstd
	export NATS_URL=nats://nats:4222
	export AUTH_MODE=jwt JWT_SECRET=$(openssl rand -base64 48)
	./roomrec

SIGINT and SIGTERM drain the HTTP server (SHUTDOWN_TIMEOUT) and close the
store backend and event bus.
*/
package main
