// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AuthMode
		wantErr bool
	}{
		{"", AuthModeNone, false},
		{"none", AuthModeNone, false},
		{"jwt", AuthModeJWT, false},
		{"oidc", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAuthMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseAuthMode(%q) = (%q, %v), want (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	m := newTestManager(t)
	token, err := m.GenerateToken("alice", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		mode       AuthMode
		header     string
		cookie     string
		wantStatus int
		wantClaims bool
	}{
		{"disabled passes through", AuthModeNone, "", "", http.StatusNoContent, false},
		{"bearer header", AuthModeJWT, "Bearer " + token, "", http.StatusNoContent, true},
		{"lowercase scheme", AuthModeJWT, "bearer " + token, "", http.StatusNoContent, true},
		{"cookie", AuthModeJWT, "", token, http.StatusNoContent, true},
		{"missing", AuthModeJWT, "", "", http.StatusUnauthorized, false},
		{"basic scheme", AuthModeJWT, "Basic YWxpY2U6cHc=", "", http.StatusUnauthorized, false},
		{"invalid token", AuthModeJWT, "Bearer garbage", "", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			h := NewMiddleware(tt.mode, m).Authenticate(next)

			req := httptest.NewRequest(http.MethodPost, "/add_room/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if (seen != nil) != tt.wantClaims {
				t.Errorf("claims present = %v, want %v", seen != nil, tt.wantClaims)
			}
			if tt.wantStatus == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("401 without WWW-Authenticate header")
			}
		})
	}
}
