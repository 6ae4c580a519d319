// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package vectorspace

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the collection size above which documents are
// tokenized concurrently.
const parallelThreshold = 256

// Index is a fitted TF-IDF vector space. It is immutable after Fit and safe
// for concurrent use.
type Index struct {
	vocabulary map[string]int32
	terms      []string
	idf        []float64
	rows       []Vector

	// postings[t] holds the rows whose document contains term t.
	postings []*roaring.Bitmap
}

// Fit builds a new index over documents. Row i of the result is the vector of
// documents[i]. An empty collection yields an empty, usable index.
func Fit(ctx context.Context, documents []string) (*Index, error) {
	counts, err := countAll(ctx, documents)
	if err != nil {
		return nil, err
	}

	df := make(map[string]int)
	for _, c := range counts {
		for term := range c {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(documents))
	idx := &Index{
		vocabulary: make(map[string]int32, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
		rows:       make([]Vector, len(documents)),
		postings:   make([]*roaring.Bitmap, len(terms)),
	}
	for i, term := range terms {
		idx.vocabulary[term] = int32(i)
		idx.idf[i] = smoothIDF(n, float64(df[term]))
		idx.postings[i] = roaring.New()
	}

	for row, c := range counts {
		v := idx.weigh(c)
		for _, t := range v.Indices {
			idx.postings[t].Add(uint32(row))
		}
		idx.rows[row] = v
	}

	for _, p := range idx.postings {
		p.RunOptimize()
	}

	return idx, nil
}

// smoothIDF is ln((1+n)/(1+df)) + 1. The added one keeps terms present in
// every document from being ignored entirely.
func smoothIDF(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}

func countAll(ctx context.Context, documents []string) ([]map[string]int, error) {
	counts := make([]map[string]int, len(documents))

	if len(documents) < parallelThreshold {
		for i, doc := range documents {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			counts[i] = termCounts(doc)
		}
		return counts, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts[i] = termCounts(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tokenize documents: %w", err)
	}
	return counts, nil
}

// weigh turns raw term counts into an L2-normalised TF-IDF vector. Terms
// outside the vocabulary are dropped.
func (idx *Index) weigh(counts map[string]int) Vector {
	type component struct {
		index  int32
		weight float64
	}
	comps := make([]component, 0, len(counts))
	for term, tf := range counts {
		t, ok := idx.vocabulary[term]
		if !ok {
			continue
		}
		comps = append(comps, component{index: t, weight: float64(tf) * idx.idf[t]})
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].index < comps[j].index })

	v := Vector{
		Indices: make([]int32, len(comps)),
		Values:  make([]float64, len(comps)),
	}
	for i, c := range comps {
		v.Indices[i] = c.index
		v.Values[i] = c.weight
	}
	normalizeL2(v)
	return v
}

// Project maps a query document into the fitted space using the fitted
// weights. Unknown terms contribute nothing.
func (idx *Index) Project(query string) Vector {
	return idx.weigh(termCounts(query))
}

// Candidates returns the rows sharing at least one term with q. Only these
// rows can have a non-zero similarity to q.
func (idx *Index) Candidates(q Vector) *roaring.Bitmap {
	if q.IsZero() {
		return roaring.New()
	}
	lists := make([]*roaring.Bitmap, 0, len(q.Indices))
	for _, t := range q.Indices {
		if int(t) < len(idx.postings) {
			lists = append(lists, idx.postings[t])
		}
	}
	return roaring.FastOr(lists...)
}

// Len returns the number of fitted documents.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Row returns the vector of document i. The returned vector shares memory
// with the index and must not be modified.
func (idx *Index) Row(i int) Vector {
	return idx.rows[i]
}

// VocabularySize returns the number of distinct terms seen at fit time.
func (idx *Index) VocabularySize() int {
	return len(idx.terms)
}

// Terms returns a copy of the vocabulary in index order.
func (idx *Index) Terms() []string {
	out := make([]string, len(idx.terms))
	copy(out, idx.terms)
	return out
}

// IDF returns the inverse document frequency of term.
func (idx *Index) IDF(term string) (float64, bool) {
	t, ok := idx.vocabulary[term]
	if !ok {
		return 0, false
	}
	return idx.idf[t], true
}
