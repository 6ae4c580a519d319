// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package vectorspace builds a bag-of-words TF-IDF vector space over a set of
// text documents.
//
// Weighting follows the common smoothed scheme:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), each row L2-normalised
//
// Documents are lower-cased and split into runs of two or more word
// characters (see Tokenize).
//
// An Index is a full rebuild: there is no incremental insert. Callers refit
// over the whole collection after every change and swap the new *Index in
// atomically. Each term keeps a roaring bitmap of the rows containing it,
// which lets rankers skip rows that cannot score above zero.
//
// Example:
//
//	idx, err := vectorspace.Fit(ctx, []string{"python ml engineer", "welding technician"})
//	if err != nil {
//	    return err
//	}
//	q := idx.Project("python engineer")
//	rows := idx.Candidates(q) // {0}
package vectorspace
