// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package vectorspace

import (
	"strings"
	"unicode"
)

// minTokenRunes is the shortest run of word characters kept as a term.
// Single characters ("c", "r", "a") are discarded.
const minTokenRunes = 2

// Tokenize lower-cases doc and splits it into terms.
//
// A term is a maximal run of Unicode letters, digits or underscores that is at
// least two runes long. Everything else separates terms, so "c++" yields nothing
// and "node.js" yields "node" and "js".
func Tokenize(doc string) []string {
	doc = strings.ToLower(doc)

	var tokens []string
	start := -1
	runes := 0

	flush := func(end int) {
		if start >= 0 && runes >= minTokenRunes {
			tokens = append(tokens, doc[start:end])
		}
		start = -1
		runes = 0
	}

	for i, r := range doc {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(doc))

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// termCounts returns raw term frequencies for doc.
func termCounts(doc string) map[string]int {
	tokens := Tokenize(doc)
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
