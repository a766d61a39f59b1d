package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// ReverseEnumerator enumerates every restricted-growth string of length n
// whose block count lies in [kmin, kmax], in reverse lexicographic order —
// the exact reversal of what BetweenKEnumerator produces. Passing kmin=1,
// kmax=k gives at-most-k in reverse; kmin=kmax=k gives exactly-k in
// reverse; kmin=1, kmax=n gives the unrestricted reverse enumeration.
type ReverseEnumerator struct {
	a, b       []int
	n          int
	kmin, kmax int
	first      bool
	done       bool
}

// NewReverseEnumerator constructs the reverse-order counterpart of
// NewBetweenKEnumerator, with identical argument requirements.
func NewReverseEnumerator(n, kmin, kmax int) (*ReverseEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.reverse", "n must be positive")
	}
	if kmin <= 0 || kmax <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.reverse", "kmin and kmax must be positive")
	}
	if kmin > n || kmax > n {
		return nil, partitionerr.ArgInvalid("rgs.reverse", "kmin and kmax must not exceed n")
	}
	if kmin > kmax {
		return nil, partitionerr.ArgInvalid("rgs.reverse", "kmin must not exceed kmax")
	}
	e := &ReverseEnumerator{a: make([]int, n), b: make([]int, n+1), n: n, kmin: kmin, kmax: kmax, first: true}
	for i := 0; i < n; i++ {
		e.a[i] = min(i, kmax-1)
		e.b[i+1] = e.a[i]
	}
	return e, nil
}

func (e *ReverseEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}

	i := e.n - 1
	for i > 0 && (e.a[i] == 0 || e.kmin-e.b[i] > e.n-i) {
		i--
	}
	if i == 0 {
		e.done = true
		return nil, false
	}
	e.a[i]--
	e.b[i+1] = max(e.a[i], e.b[i])

	for i++; e.b[i] < e.kmax-1 && i < e.n; i++ {
		e.a[i] = e.b[i] + 1
		e.b[i+1] = e.a[i]
	}
	for ; i < e.n; i++ {
		e.a[i] = e.kmax - 1
		e.b[i+1] = e.kmax - 1
	}
	return cloneInts(e.a), true
}

func (e *ReverseEnumerator) Seq() iter.Seq[Vector] {
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
