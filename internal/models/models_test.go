// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name                     string
		skills, position, tracks string
		want                     string
	}{
		{"all present", "python ml", "engineer", "backend", "python ml engineer backend"},
		{"missing tracks", "python", "engineer", "", "python engineer "},
		{"missing skills", "", "engineer", "backend", " engineer backend"},
		{"all missing", "", "", "", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.skills, tt.position, tt.tracks); got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryDocument(t *testing.T) {
	if got := QueryDocument("python", "engineer"); got != "python engineer" {
		t.Errorf("QueryDocument() = %q, want %q", got, "python engineer")
	}
}

func TestRoom_Recompose(t *testing.T) {
	r := Room{Skills: "go", Position: "sre", Tracks: "infra", CombinedFeatures: "stale"}
	r.Recompose()
	if r.CombinedFeatures != "go sre infra" {
		t.Errorf("CombinedFeatures = %q, want %q", r.CombinedFeatures, "go sre infra")
	}

	r.Tracks = ""
	r.Recompose()
	if r.CombinedFeatures != Compose(r.Skills, r.Position, r.Tracks) {
		t.Errorf("CombinedFeatures = %q, not equal to Compose()", r.CombinedFeatures)
	}
}

func TestRoom_NormalizeLineEndings(t *testing.T) {
	r := Room{ID: "A", Description: "line one\r\nline two\rkept", Skills: "go\r\nrust", Name: "plain"}
	r.NormalizeLineEndings()

	if r.Description != "line one\nline two\rkept" {
		t.Errorf("Description = %q", r.Description)
	}
	if r.Skills != "go\nrust" {
		t.Errorf("Skills = %q", r.Skills)
	}
	if r.Name != "plain" || r.ID != "A" {
		t.Errorf("untouched fields changed: %+v", r)
	}
}

func TestRoom_JSONKeys(t *testing.T) {
	r := Room{
		ID: "r1", Name: "Gophers", CreatorID: "u9", Description: "d",
		Skills: "go", Position: "dev", Tracks: "backend",
		CreatedAt: "2026-01-02", Members: 3, CoverPicture: "pic.png",
	}
	r.Recompose()

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)

	for _, key := range []string{`"ID"`, `"Name"`, `"Skills"`, `"Position"`, `"Tracks"`, `"Description"`, `"CreatedAt"`, `"Members"`, `"CoverPicture"`} {
		if !strings.Contains(s, key) {
			t.Errorf("JSON %s missing key %s", s, key)
		}
	}
	for _, hidden := range []string{"CreatorID", "CombinedFeatures", "u9"} {
		if strings.Contains(s, hidden) {
			t.Errorf("JSON %s exposes %s", s, hidden)
		}
	}
}
