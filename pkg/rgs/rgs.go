// Package rgs enumerates restricted-growth strings (RGS): integer vectors
// that encode set partitions bijectively. Vector v of length n encodes a
// partition of {0, ..., n-1} where v[i] is the index of the block element
// i belongs to, subject to v[0] == 0 and v[i] <= 1 + max(v[0..i-1]).
//
// Every enumerator here implements Hutchinson's algorithm (TAOCP 7.2.1.5,
// Algorithm H) or a bounded variant of it: an auxiliary running-max vector
// b lets each successor be computed in amortized O(1), without rescanning
// the whole vector.
package rgs

import (
	"sort"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// Vector is one restricted-growth string: a 0-indexed block assignment.
type Vector []int

// BlockCount returns the number of distinct blocks encoded by v, i.e. one
// more than the maximum entry.
func (v Vector) BlockCount() int {
	max := 0
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	return max + 1
}

func cloneInts(src []int) Vector {
	v := make(Vector, len(src))
	copy(v, src)
	return v
}

func sortedDistinct(k []int) ([]int, error) {
	if len(k) == 0 {
		return nil, partitionerr.ArgInvalid("rgs", "k must not be empty")
	}
	sorted := append([]int(nil), k...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, partitionerr.ArgInvalid("rgs", "k must not contain duplicate values")
		}
	}
	return sorted, nil
}
