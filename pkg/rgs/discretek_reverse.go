package rgs

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// DiscreteKReverseEnumerator is the reverse-lexicographic counterpart of
// DiscreteKEnumerator: the exact reversal of its output sequence.
//
// The original Java library's public facade
// (Partitions.reverseLexicographicEnumeration(Set, int[], factory)) wires
// this engine's forward sibling by mistake instead of this one; this
// rewrite wires the correct engine (see DESIGN.md).
type DiscreteKReverseEnumerator struct {
	a, b  []int
	k     []int // sorted ascending, distinct
	m     []int
	mr    []int // mr[c] = largest allowed block count <= c
	n     int
	first bool
	done  bool
}

// NewDiscreteKReverseEnumerator constructs the reverse-order counterpart
// of NewDiscreteKEnumerator, with identical argument requirements.
func NewDiscreteKReverseEnumerator(n int, k []int) (*DiscreteKReverseEnumerator, error) {
	if n <= 0 {
		return nil, partitionerr.ArgInvalid("rgs.discreteKReverse", "n must be positive")
	}
	sorted, err := sortedDistinct(k)
	if err != nil {
		return nil, err
	}
	for _, kv := range sorted {
		if kv <= 0 || kv > n {
			return nil, partitionerr.ArgInvalid("rgs.discreteKReverse", "every k value must be between 1 and n")
		}
	}

	e := &DiscreteKReverseEnumerator{a: make([]int, n), b: make([]int, n+1), k: sorted, n: n, first: true}

	kLast := sorted[len(sorted)-1]
	for i := 0; i < n; i++ {
		e.a[i] = min(i, kLast-1)
		e.b[i+1] = e.a[i]
	}

	e.m = make([]int, kLast+1)
	c := 0
	for i := 0; i < len(sorted); i++ {
		for ; c < sorted[i]+1; c++ {
			e.m[c] = sorted[i]
		}
	}

	e.mr = make([]int, kLast+1)
	for i := 0; i < len(sorted)-1; i++ {
		for j := sorted[i]; j < sorted[i+1]; j++ {
			e.mr[j] = sorted[i]
		}
	}
	e.mr[len(e.mr)-1] = kLast

	return e, nil
}

func (e *DiscreteKReverseEnumerator) Next() (Vector, bool) {
	if e.done {
		return nil, false
	}
	if e.first {
		e.first = false
		return cloneInts(e.a), true
	}

	i := e.n
	var tmpMax int
	for {
		i--
		tmpMax = max(e.a[i]-1, e.b[i])
		if !(i > 0 && (e.a[i] == 0 || e.m[tmpMax+1]-tmpMax-1 > e.n-i-1)) {
			break
		}
	}
	if i == 0 {
		e.done = true
		return nil, false
	}
	e.a[i]--
	e.b[i+1] = max(e.a[i], e.b[i])

	maxPossible := e.b[i+1] + e.n - i
	var kmax int
	if maxPossible >= len(e.mr) {
		kmax = e.k[len(e.k)-1]
	} else {
		kmax = e.mr[maxPossible]
	}

	for i++; e.b[i] < kmax-1 && i < e.n; i++ {
		e.a[i] = e.b[i] + 1
		e.b[i+1] = e.a[i]
	}
	for ; i < e.n; i++ {
		e.a[i] = kmax - 1
		e.b[i+1] = kmax - 1
	}
	return cloneInts(e.a), true
}

func (e *DiscreteKReverseEnumerator) Seq() iter.Seq[Vector] {
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
