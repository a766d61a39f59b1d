package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// ExactlyKEnumerator enumerates every restricted-growth string of length n
// using exactly k blocks.
type ExactlyKEnumerator struct {
	a, b  []int
	n, k  int
	first bool
	done  bool
}

// NewExactlyKEnumerator constructs an enumerator over partitions of an
// n-element set with exactly k blocks. Requires n > 0, k > 0, k <= n.
func NewExactlyKEnumerator(n, k int) (*ExactlyKEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.exactlyK", "n must be positive")
	}
	if k <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.exactlyK", "k must be positive")
	}
	if k > n {
		return nil, partitionerr.ArgInvalid("rgs.exactlyK", "k must not exceed n")
	}
	e := &ExactlyKEnumerator{a: make([]int, n), b: make([]int, n), n: n, k: k, first: true}
	for i := n - 1; i > n-k; i-- {
		e.a[i] = k - n + i
		e.b[i] = k - n + i - 1
	}
	return e, nil
}

func (e *ExactlyKEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}
	for {
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
		if max(e.a[e.n-1], e.b[e.n-1]) == e.k-1 {
			break
		}
	}
	return cloneInts(e.a), true
}

func (e *ExactlyKEnumerator) Seq() iter.Seq[Vector] {
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
