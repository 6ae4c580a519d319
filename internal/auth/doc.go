// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package auth authenticates callers of the room mutation routes.

Two modes are supported:

  - none: every request passes (the default, matching the original service)
  - jwt: requests must carry an HS256 bearer token issued by JWTManager

Tokens are read from the Authorization header ("Bearer <token>") or from a
"token" cookie. Validated claims are stored in the request context and read
back with ClaimsFromContext; authorization decisions are made by package
authz.

# Example

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, 24*time.Hour)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(auth.AuthModeJWT, jwtManager)
	r.With(mw.Authenticate).Post("/add_room/", h.AddRoom)
*/
package auth
