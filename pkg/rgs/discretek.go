package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// DiscreteKEnumerator enumerates every restricted-growth string of length
// n whose block count is one of an arbitrary, discrete set of allowed
// values K, in lexicographic order.
type DiscreteKEnumerator struct {
	a, b  []int
	k     []int // sorted ascending, distinct
	m     []int // m[c] = smallest allowed block count >= c, for c in [0, k[last]]
	n     int
	first bool
	done  bool
}

// NewDiscreteKEnumerator constructs an enumerator over partitions of an
// n-element set whose block count is a member of k. n must be positive;
// k must be non-empty, contain no duplicates, and every value must lie in
// [1, n].
func NewDiscreteKEnumerator(n int, k []int) (*DiscreteKEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.discreteK", "n must be positive")
	}
	sorted, err := sortedDistinct(k)
	if err != nil {
		return nil, err
	}
	for _, kv := range sorted {
		if kv <= 0 || kv > n {
			return nil, partitionerr.ArgInvalid("rgs.discreteK", "every k value must be between 1 and n")
		}
	}

	e := &DiscreteKEnumerator{a: make([]int, n), b: make([]int, n+1), k: sorted, n: n, first: true}

	k0 := sorted[0]
	for i := n - 1; i > n-k0; i-- {
		e.a[i] = k0 - n + i
		e.b[i] = k0 - n + i - 1
	}

	e.m = make([]int, sorted[len(sorted)-1]+1)
	c := 0
	for i := 0; i < len(sorted); i++ {
		for ; c < sorted[i]+1; c++ {
			e.m[c] = sorted[i]
		}
	}
	return e, nil
}

func (e *DiscreteKEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}

	kLast := e.k[len(e.k)-1]
	i := e.n
	var tmpMax int
	for {
		i--
		tmpMax = max(e.a[i]+1, e.b[i])
		if !(i > 0 && (e.a[i] == kLast-1 || e.m[tmpMax+1]-tmpMax-1 > e.n-i-1 || e.a[i] > e.b[i])) {
			break
		}
	}
	if i == 0 {
		e.done = true
		return nil, false
	}
	e.a[i]++
	e.b[i+1] = max(e.a[i], e.b[i])

	zeroes := e.b[i+1] + e.n - i - e.m[e.b[i+1]+1]
	for i++; zeroes > 0 && i < e.n; i, zeroes = i+1, zeroes-1 {
		e.a[i] = 0
		e.b[i+1] = e.b[i]
	}
	for ; i < e.n; i++ {
		e.a[i] = e.b[i] + 1
		e.b[i+1] = e.a[i]
	}
	return cloneInts(e.a), true
}

func (e *DiscreteKEnumerator) Seq() iter.Seq[Vector] {
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
