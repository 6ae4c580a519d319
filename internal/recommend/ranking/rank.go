// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package ranking scores fitted documents against a query vector.
package ranking

import (
	"sort"

	"github.com/tomtom215/roomrec/internal/recommend/vectorspace"
)

// Match is a ranked row of the index.
type Match struct {
	Row   int     `json:"row"`
	Score float64 `json:"score"`
}

// Cosine returns the cosine similarity of a and b, or 0 when either vector
// has no length.
func Cosine(a, b vectorspace.Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return vectorspace.Dot(a, b) / (na * nb)
}

// Rank returns up to topN rows of idx ordered by descending cosine
// similarity to query.
//
// Rows with zero similarity are never returned, so the result may be shorter
// than topN even when the index holds more rows. Equal scores keep their
// collection order.
func Rank(query vectorspace.Vector, idx *vectorspace.Index, topN int) []Match {
	if topN <= 0 || idx == nil || idx.Len() == 0 || query.IsZero() {
		return []Match{}
	}

	candidates := idx.Candidates(query)
	matches := make([]Match, 0, candidates.GetCardinality())

	// Iteration is in ascending row order, which the stable sort preserves
	// for ties.
	it := candidates.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		score := Cosine(query, idx.Row(row))
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Row: row, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}
