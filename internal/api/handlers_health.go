// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/roomrec/internal/recommend"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"alive":   true,
		"version": h.config.Version,
		"uptime":  time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 once the room table has been loaded, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.rooms.Started() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Room collection is still loading", nil)
		return
	}

	status := h.rooms.Status()
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"ready": true,
		"state": status.State,
		"rooms": status.Rooms,
	}, start)
}

// RoomsStatusResponse is the payload of GET /api/v1/rooms/status.
type RoomsStatusResponse struct {
	Engine  recommend.Status  `json:"engine"`
	Metrics recommend.Metrics `json:"metrics"`
}

// RoomsStatus handles GET /api/v1/rooms/status.
func (h *Handler) RoomsStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, r, http.StatusOK, RoomsStatusResponse{
		Engine:  h.rooms.Status(),
		Metrics: h.rooms.GetMetrics(),
	}, start)
}
