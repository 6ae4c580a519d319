// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package vectorspace

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"lowercases", "Python ML", []string{"python", "ml"}},
		{"drops single characters", "c r a go", []string{"go"}},
		{"punctuation separates", "node.js, go-lang", []string{"node", "js", "go", "lang"}},
		{"symbols only", "c++ & ++", nil},
		{"underscore is a word rune", "data_science", []string{"data_science"}},
		{"digits kept", "3d web3", []string{"3d", "web3"}},
		{"unicode letters", "Ünïcödé مهندس", []string{"ünïcödé", "مهندس"}},
		{"repeated terms kept", "go go go", []string{"go", "go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.doc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestFit_Empty(t *testing.T) {
	idx, err := Fit(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fit(nil) error = %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if idx.VocabularySize() != 0 {
		t.Errorf("VocabularySize() = %d, want 0", idx.VocabularySize())
	}

	q := idx.Project("python engineer")
	if !q.IsZero() {
		t.Errorf("Project on empty index = %v, want zero vector", q)
	}
	if c := idx.Candidates(q); !c.IsEmpty() {
		t.Errorf("Candidates on empty index = %v, want empty", c.ToArray())
	}
}

func TestFit_VocabularyAndIDF(t *testing.T) {
	docs := []string{
		"python ml engineer",
		"welding technician",
		"python engineer",
	}
	idx, err := Fit(context.Background(), docs)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	wantTerms := []string{"engineer", "ml", "python", "technician", "welding"}
	if got := idx.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("Terms() = %v, want %v", got, wantTerms)
	}

	tests := []struct {
		term string
		df   float64
	}{
		{"python", 2},
		{"engineer", 2},
		{"ml", 1},
		{"welding", 1},
	}
	for _, tt := range tests {
		got, ok := idx.IDF(tt.term)
		if !ok {
			t.Fatalf("IDF(%q) missing", tt.term)
		}
		want := math.Log((1+3)/(1+tt.df)) + 1
		if !almostEqual(got, want) {
			t.Errorf("IDF(%q) = %v, want %v", tt.term, got, want)
		}
	}

	if _, ok := idx.IDF("java"); ok {
		t.Error("IDF(java) reported present for unseen term")
	}
}

func TestFit_RowsAreUnitLength(t *testing.T) {
	docs := []string{"python python ml", "welding", "", "!!"}
	idx, err := Fit(context.Background(), docs)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if idx.Len() != len(docs) {
		t.Fatalf("Len() = %d, want %d", idx.Len(), len(docs))
	}

	for i := 0; i < 2; i++ {
		if n := idx.Row(i).Norm(); !almostEqual(n, 1) {
			t.Errorf("Row(%d).Norm() = %v, want 1", i, n)
		}
	}
	for i := 2; i < 4; i++ {
		if !idx.Row(i).IsZero() {
			t.Errorf("Row(%d) = %v, want zero vector for document without terms", i, idx.Row(i))
		}
	}
}

func TestFit_MatchesReferenceWeights(t *testing.T) {
	// Two documents with disjoint terms: every idf is ln(3/2)+1, so each row
	// spreads its mass evenly over its own terms.
	idx, err := Fit(context.Background(), []string{"python ml engineer", "welding technician"})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	row := idx.Row(0)
	if row.Len() != 3 {
		t.Fatalf("Row(0).Len() = %d, want 3", row.Len())
	}
	for _, w := range row.Values {
		if !almostEqual(w, 1/math.Sqrt(3)) {
			t.Errorf("Row(0) weight = %v, want %v", w, 1/math.Sqrt(3))
		}
	}

	q := idx.Project("python engineer")
	if got, want := Dot(q, row), 2/math.Sqrt(6); !almostEqual(got, want) {
		t.Errorf("Dot(query, row0) = %v, want %v", got, want)
	}
	if got := Dot(q, idx.Row(1)); got != 0 {
		t.Errorf("Dot(query, row1) = %v, want 0", got)
	}
}

func TestProject_DropsUnknownTerms(t *testing.T) {
	idx, err := Fit(context.Background(), []string{"python engineer"})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	q := idx.Project("python rust haskell")
	if q.Len() != 1 {
		t.Fatalf("Project().Len() = %d, want 1", q.Len())
	}
	if !almostEqual(q.Norm(), 1) {
		t.Errorf("Project().Norm() = %v, want 1", q.Norm())
	}

	if z := idx.Project("rust haskell"); !z.IsZero() {
		t.Errorf("Project(all unknown) = %v, want zero vector", z)
	}
}

func TestCandidates(t *testing.T) {
	idx, err := Fit(context.Background(), []string{
		"python ml",
		"welding technician",
		"python backend",
		"frontend react",
	})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	got := idx.Candidates(idx.Project("python react")).ToArray()
	want := []uint32{0, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestFit_ParallelMatchesSequential(t *testing.T) {
	docs := make([]string, parallelThreshold+10)
	for i := range docs {
		docs[i] = fmt.Sprintf("skill%d common track%d", i%17, i%5)
	}

	par, err := Fit(context.Background(), docs)
	if err != nil {
		t.Fatalf("Fit(parallel) error = %v", err)
	}
	seq, err := Fit(context.Background(), docs[:parallelThreshold-1])
	if err != nil {
		t.Fatalf("Fit(sequential) error = %v", err)
	}

	if par.Len() != len(docs) {
		t.Errorf("Len() = %d, want %d", par.Len(), len(docs))
	}
	// Same vocabulary either way: every term appears in the first 17 rows.
	if !reflect.DeepEqual(par.Terms(), seq.Terms()) {
		t.Errorf("Terms() differ between parallel and sequential fits")
	}
}

func TestFit_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fit(ctx, []string{"python"}); err == nil {
		t.Error("Fit() with canceled context returned nil error")
	}
}

func TestDotAndWeight(t *testing.T) {
	a := Vector{Indices: []int32{1, 3, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int32{0, 3, 5, 9}, Values: []float64{4, 5, 6, 7}}

	if got := Dot(a, b); got != 2*5+3*6 {
		t.Errorf("Dot() = %v, want %v", got, 2*5+3*6)
	}
	if got := a.Weight(3); got != 2 {
		t.Errorf("Weight(3) = %v, want 2", got)
	}
	if got := a.Weight(4); got != 0 {
		t.Errorf("Weight(4) = %v, want 0", got)
	}
}
