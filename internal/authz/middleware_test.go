// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/roomrec/internal/auth"
)

func TestMiddleware_Authorize(t *testing.T) {
	m := NewMiddleware(newTestEnforcer(t))

	tests := []struct {
		name       string
		claims     *auth.Claims
		method     string
		path       string
		action     string
		wantStatus int
	}{
		{"no claims", nil, http.MethodPost, "/add_room/", ActionWrite, http.StatusForbidden},
		{"viewer cannot add", &auth.Claims{Username: "v", Role: "viewer"}, http.MethodPost, "/add_room/", ActionWrite, http.StatusForbidden},
		{"editor can add", &auth.Claims{Username: "e", Role: "editor"}, http.MethodPost, "/add_room/", ActionWrite, http.StatusOK},
		{"editor cannot delete", &auth.Claims{Username: "e", Role: "editor"}, http.MethodDelete, "/delete_room/A", ActionDelete, http.StatusForbidden},
		{"admin can delete", &auth.Claims{Username: "a", Role: "admin"}, http.MethodDelete, "/delete_room/A", ActionDelete, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := m.Authorize(tt.action)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.claims != nil {
				req = req.WithContext(auth.ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusOK) {
				t.Errorf("next called = %v", called)
			}
		})
	}
}
