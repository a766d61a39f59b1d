package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// CoreEnumerator enumerates every restricted-growth string of length n, in
// lexicographic order, i.e. every set partition of an n-element set with
// no restriction on the number of blocks.
type CoreEnumerator struct {
	a, b  []int
	n     int
	first bool
	done  bool
}

// NewCoreEnumerator constructs an enumerator over all partitions of an
// n-element set. n must be positive.
func NewCoreEnumerator(n int) (*CoreEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.core", "n must be positive")
	}
	return &CoreEnumerator{a: make([]int, n), b: make([]int, n), n: n, first: true}, nil
}

// Next returns the next restricted-growth string, or (nil, false) once the
// sequence is exhausted. The returned Vector is a fresh copy; callers may
// retain it freely.
func (e *CoreEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}
	i := e.n - 1
	for i > 0 && (e.a[i] == e.n-1 || e.a[i] > e.b[i]) {
		i--
	}
	if i == 0 {
		e.done = true
		return nil, false
	}
	e.a[i]++
	for j := i + 1; j < e.n; j++ {
		e.a[j] = 0
		e.b[j] = max(e.b[j-1], e.a[j-1])
	}
	return cloneInts(e.a), true
}

// Seq adapts Next into a range-over-func iterator.
func (e *CoreEnumerator) Seq() iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for {
			v, ok := e.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
