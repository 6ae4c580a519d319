// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package supervisor runs roomrec's long-lived services under suture v4.

The tree has three layers so one can restart without touching the others:

	roomrec
	├── data-layer
	│   └── rooms            (initial load, scheduled reload, cache purge)
	├── messaging-layer
	│   └── events-consumer  (only when events are enabled)
	└── api-layer
	    └── http-server

A crashing service is restarted immediately. Once its failure count
(decaying over FailureDecay seconds) passes FailureThreshold, restarts wait
FailureBackoff. Supervisor events go to slog through sutureslog, which
cmd/server bridges into zerolog.

Usage:

	tree := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewRoomsService(engine, services.RoomsServiceConfig{}, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second, logger))
	err := tree.Serve(ctx)
*/
package supervisor
