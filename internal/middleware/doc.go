// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package middleware provides HTTP middleware shared by every route.

  - RequestID: request and correlation IDs for logging.Ctx
  - PrometheusMetrics: api_requests_total, latency histogram and in-flight gauge,
    labelled by chi route pattern

Both have the func(http.Handler) http.Handler shape and plug straight into
chi's r.Use. CORS, rate limiting and panic recovery come from the chi
ecosystem and are assembled in package api.
*/
package middleware
