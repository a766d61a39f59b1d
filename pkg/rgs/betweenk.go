package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// BetweenKEnumerator enumerates every restricted-growth string of length n
// whose block count lies in [kmin, kmax].
type BetweenKEnumerator struct {
	a, b       []int
	n          int
	kmin, kmax int
	first      bool
	done       bool
}

// NewBetweenKEnumerator constructs an enumerator over partitions of an
// n-element set with between kmin and kmax blocks, inclusive. Requires
// n > 0, kmin > 0, kmax > 0, kmin <= kmax <= n, kmin <= n.
func NewBetweenKEnumerator(n, kmin, kmax int) (*BetweenKEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.betweenK", "n must be positive")
	}
	if kmin <= 0 || kmax <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.betweenK", "kmin and kmax must be positive")
	}
	if kmin > n || kmax > n {
		return nil, partitionerr.ArgInvalid("rgs.betweenK", "kmin and kmax must not exceed n")
	}
	if kmin > kmax {
		return nil, partitionerr.ArgInvalid("rgs.betweenK", "kmin must not exceed kmax")
	}
	e := &BetweenKEnumerator{a: make([]int, n), b: make([]int, n), n: n, kmin: kmin, kmax: kmax, first: true}
	for i := n - 1; i > n-kmin; i-- {
		e.a[i] = kmin - n + i
		e.b[i] = kmin - n + i - 1
	}
	return e, nil
}

func (e *BetweenKEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}
	i := e.n - 1
	for i > 0 && (e.a[i] == e.kmax-1 || e.a[i] > e.b[i]) {
		i--
	}
	if i == 0 {
		e.done = true
		return nil, false
	}
	e.a[i]++
	zeroes := max(e.a[i], e.b[i]) + e.n - i - e.kmin
	for i++; zeroes > 0 && i < e.n; i, zeroes = i+1, zeroes-1 {
		e.a[i] = 0
		e.b[i] = max(e.b[i-1], e.a[i-1])
	}
	for ; i < e.n; i++ {
		e.a[i] = max(e.b[i-1], e.a[i-1]) + 1
		e.b[i] = max(e.b[i-1], e.a[i-1])
	}
	return cloneInts(e.a), true
}

func (e *BetweenKEnumerator) Seq() iter.Seq[Vector] {
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
