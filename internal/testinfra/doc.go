// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

//go:build integration

// Package testinfra starts real dependencies in containers for integration
// tests: MinIO for the object store backend and NATS for room events.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/store/... ./internal/events/...
//
// Tests call RequireDocker first so they degrade to a skip on machines
// without a Docker daemon, and register containers with Cleanup.
package testinfra
