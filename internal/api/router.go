// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/roomrec/internal/auth"
	"github.com/tomtom215/roomrec/internal/authz"
	"github.com/tomtom215/roomrec/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	auth          *auth.Middleware
	authz         *authz.Middleware
}

// NewRouter creates a router. authMiddleware and authzMiddleware may be nil,
// which leaves the mutation routes open.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, authMiddleware *auth.Middleware, authzMiddleware *authz.Middleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		auth:          authMiddleware,
		authz:         authzMiddleware,
	}
}

// guard requires a token whose role may perform action, when auth is enabled.
func (router *Router) guard(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if router.auth == nil || !router.auth.Enabled() {
			return next
		}
		if router.authz != nil {
			next = router.authz.Authorize(action)(next)
		}
		return router.auth.Authenticate(next)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/rooms", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Get("/status", router.handler.RoomsStatus)
	})

	// Room routes keep the paths existing clients call.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Post("/recommend/", router.handler.Recommend)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWrite())

			r.With(router.guard(authz.ActionWrite)).Post("/add_room/", router.handler.AddRoom)
			r.With(router.guard(authz.ActionDelete)).Delete("/delete_room/{room_id}", router.handler.DeleteRoom)
		})
	})

	r.With(router.chiMiddleware.RateLimitHealth()).Handle("/metrics", promhttp.Handler())

	return r
}
