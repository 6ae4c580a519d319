// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package authz

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(EnforcerConfig{})
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	return e
}

func TestEnforcer_EmbeddedPolicy(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role   string
		object string
		action string
		want   bool
	}{
		{"viewer", "/recommend/", ActionRead, true},
		{"viewer", "/add_room/", ActionWrite, false},
		{"viewer", "/delete_room/A", ActionDelete, false},
		{"editor", "/add_room/", ActionWrite, true},
		{"editor", "/recommend/", ActionRead, true},
		{"editor", "/delete_room/A", ActionDelete, false},
		{"admin", "/delete_room/A", ActionDelete, true},
		{"admin", "/add_room/", ActionWrite, true},
		{"admin", "/anything/else", ActionWrite, true},
		{"", "/recommend/", ActionRead, true},
		{"", "/add_room/", ActionWrite, false},
		{"stranger", "/recommend/", ActionRead, false},
	}

	for _, tt := range tests {
		got, err := e.Enforce(tt.role, tt.object, tt.action)
		if err != nil {
			t.Fatalf("Enforce(%q, %q, %q) error = %v", tt.role, tt.object, tt.action, err)
		}
		if got != tt.want {
			t.Errorf("Enforce(%q, %q, %q) = %v, want %v", tt.role, tt.object, tt.action, got, tt.want)
		}
	}
}

func TestEnforcer_PolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.csv")
	policy := "p, viewer, /add_room/, write\n"
	if err := os.WriteFile(path, []byte(policy), 0o600); err != nil {
		t.Fatal(err)
	}

	e, err := NewEnforcer(EnforcerConfig{PolicyPath: path})
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	if ok, _ := e.Enforce("viewer", "/add_room/", ActionWrite); !ok {
		t.Error("custom policy not applied")
	}
	if ok, _ := e.Enforce("admin", "/delete_room/A", ActionDelete); ok {
		t.Error("embedded policy leaked into custom policy")
	}

	rules, err := e.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Errorf("Policy() has %d rules, want 1", len(rules))
	}
}
