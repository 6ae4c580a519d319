// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/roomrec/internal/models"
	"github.com/tomtom215/roomrec/internal/recommend"
)

// RoomService is the part of recommend.Engine the handlers use.
type RoomService interface {
	Recommend(ctx context.Context, skills, position string, topN int) ([]models.Room, error)
	AddRoom(ctx context.Context, room models.Room) error
	DeleteRoom(ctx context.Context, id string) (recommend.DeleteOutcome, error)
	Started() bool
	Status() recommend.Status
	GetMetrics() recommend.Metrics
}

// HandlerConfig configures the API handlers.
type HandlerConfig struct {
	// Version is reported by the liveness endpoint.
	Version string

	// RequestTimeout bounds each recommendation, including the wait for a
	// query slot. Default: 10s
	RequestTimeout time.Duration
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_rooms.go: recommend, add and delete
//   - handlers_health.go: liveness, readiness and engine status
type Handler struct {
	rooms     RoomService
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(rooms RoomService, cfg HandlerConfig) *Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Handler{
		rooms:     rooms,
		config:    cfg,
		startTime: time.Now(),
	}
}
