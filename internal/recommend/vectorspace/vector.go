// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package vectorspace

import "math"

// Vector is a sparse vector over an index vocabulary.
// Indices are strictly ascending and Values[i] is the weight of term Indices[i].
type Vector struct {
	Indices []int32
	Values  []float64
}

// Len returns the number of non-zero components.
func (v Vector) Len() int {
	return len(v.Indices)
}

// IsZero reports whether the vector has no non-zero components.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors.
// Both vectors must have ascending indices.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Weight returns the component for term index idx, or 0 if absent.
func (v Vector) Weight(idx int32) float64 {
	lo, hi := 0, len(v.Indices)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if v.Indices[mid] < idx {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(v.Indices) && v.Indices[lo] == idx {
		return v.Values[lo]
	}
	return 0
}

// normalizeL2 scales v in place to unit length. Zero vectors are left unchanged.
func normalizeL2(v Vector) {
	n := v.Norm()
	if n == 0 {
		return
	}
	inv := 1 / n
	for i := range v.Values {
		v.Values[i] *= inv
	}
}
