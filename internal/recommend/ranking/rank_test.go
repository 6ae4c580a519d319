// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package ranking

import (
	"context"
	"math"
	"testing"

	"github.com/tomtom215/roomrec/internal/recommend/vectorspace"
)

func fit(t *testing.T, docs ...string) *vectorspace.Index {
	t.Helper()
	idx, err := vectorspace.Fit(context.Background(), docs)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return idx
}

func rows(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Row
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCosine(t *testing.T) {
	a := vectorspace.Vector{Indices: []int32{0, 1}, Values: []float64{3, 4}}
	b := vectorspace.Vector{Indices: []int32{0, 1}, Values: []float64{6, 8}}
	c := vectorspace.Vector{Indices: []int32{2}, Values: []float64{1}}

	tests := []struct {
		name string
		x, y vectorspace.Vector
		want float64
	}{
		{"parallel", a, b, 1},
		{"orthogonal", a, c, 0},
		{"zero vector", a, vectorspace.Vector{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.x, tt.y); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	idx := fit(t,
		"python ml engineer",      // 0
		"welding technician",      // 1
		"python backend engineer", // 2
		"frontend react",          // 3
	)

	tests := []struct {
		name  string
		query string
		topN  int
		want  []int
	}{
		{"best match first", "python ml engineer", 4, []int{0, 2}},
		{"top one", "python ml engineer", 1, []int{0}},
		{"topN larger than matches", "welding", 10, []int{1}},
		{"no overlap", "haskell", 4, []int{}},
		{"empty query", "", 4, []int{}},
		{"zero topN", "python", 0, []int{}},
		{"negative topN", "python", -2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(idx.Project(tt.query), idx, tt.topN)
			if !equalInts(rows(got), tt.want) {
				t.Errorf("Rank(%q, %d) rows = %v, want %v", tt.query, tt.topN, rows(got), tt.want)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Score > got[i-1].Score {
					t.Errorf("scores not descending at %d: %v > %v", i, got[i].Score, got[i-1].Score)
				}
			}
		})
	}
}

func TestRank_TiesKeepCollectionOrder(t *testing.T) {
	idx := fit(t,
		"welding",
		"go developer",
		"welding",
		"go developer",
		"go developer",
	)

	got := Rank(idx.Project("go developer"), idx, 3)
	if want := []int{1, 3, 4}; !equalInts(rows(got), want) {
		t.Errorf("Rank() rows = %v, want %v", rows(got), want)
	}

	got = Rank(idx.Project("go developer"), idx, 2)
	if want := []int{1, 3}; !equalInts(rows(got), want) {
		t.Errorf("Rank(topN=2) rows = %v, want %v", rows(got), want)
	}
}

func TestRank_EmptyIndex(t *testing.T) {
	idx := fit(t)
	if got := Rank(idx.Project("python"), idx, 4); len(got) != 0 {
		t.Errorf("Rank() on empty index = %v, want empty", got)
	}
	if got := Rank(vectorspace.Vector{}, nil, 4); len(got) != 0 {
		t.Errorf("Rank() on nil index = %v, want empty", got)
	}
}

func TestRank_ExcludesZeroSimilarity(t *testing.T) {
	idx := fit(t, "welding technician")
	if got := Rank(idx.Project("python engineer"), idx, 1); len(got) != 0 {
		t.Errorf("Rank() = %v, want no rows for unrelated query", got)
	}
}
