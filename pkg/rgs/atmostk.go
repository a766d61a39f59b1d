package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// AtMostKEnumerator enumerates every restricted-growth string of length n
// using at most k blocks.
type AtMostKEnumerator struct {
	a, b  []int
	n, k  int
	first bool
	done  bool
}

// NewAtMostKEnumerator constructs an enumerator over partitions of an
// n-element set with at most k blocks. Requires n > 0, k > 0, k <= n.
func NewAtMostKEnumerator(n, k int) (*AtMostKEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.atMostK", "n must be positive")
	}
	if k <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.atMostK", "k must be positive")
	}
	if k > n {
		return nil, partitionerr.ArgInvalid("rgs.atMostK", "k must not exceed n")
	}
	return &AtMostKEnumerator{a: make([]int, n), b: make([]int, n), n: n, k: k, first: true}, nil
}

func (e *AtMostKEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}
	i := e.n - 1
	for i > 0 && (e.a[i] == e.k-1 || e.a[i] > e.b[i]) {
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

func (e *AtMostKEnumerator) Seq() iter.Seq[Vector] {
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
