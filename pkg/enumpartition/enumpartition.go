// Package enumpartition adapts the restricted-growth-string enumerators of
// pkg/rgs to a concrete element set, producing a sequence of
// partition.Partition[T] values rather than bare integer vectors. It is
// the Go counterpart of the Java original's Partitions facade.
package enumpartition

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partition"
	"github.com/papapumpkin/partition/pkg/partitionerr"
	"github.com/papapumpkin/partition/pkg/rgs"
)

// Factory builds a Partition[T] from an element set and a block-label
// function. It is the Go analogue of the Java library's
// BiFunction<Set<T>, Function<T,Object>, Partition<T>> factory parameter.
// partition.NewUnionFindPartitionFromFunc and
// partition.NewImmutablePartitionFromFunc take the same arguments when
// instantiated with L = int but return concrete pointer types;
// UnionFindFactory and ImmutableFactory wrap them as Factory values.
type Factory[T comparable] func(elements []T, label func(T) (int, error)) (partition.Partition[T], error)

// UnionFindFactory builds a *partition.UnionFindPartition[T] from each
// enumerated partition.
func UnionFindFactory[T comparable](elements []T, label func(T) (int, error)) (partition.Partition[T], error) {
	return partition.NewUnionFindPartitionFromFunc[T, int](elements, label)
}

// ImmutableFactory builds a *partition.ImmutablePartition[T] from each
// enumerated partition — the typical choice, since enumerated partitions
// are rarely mutated afterwards.
func ImmutableFactory[T comparable](elements []T, label func(T) (int, error)) (partition.Partition[T], error) {
	return partition.NewImmutablePartitionFromFunc[T, int](elements, label)
}

// prepare validates the shared argument contract of every Enumerate*
// function: factory and elements non-nil, elements non-empty, no nil or
// duplicate element, and builds the stable element order/index table the
// RGS vectors are interpreted against.
func prepare[T comparable](op string, elements []T, factory Factory[T]) ([]T, map[T]int, error) {
	if factory == nil {
		return nil, nil, partitionerr.NullArgf(op, "factory")
	}
	if elements == nil {
		return nil, nil, partitionerr.NullArgf(op, "elements")
	}
	if len(elements) == 0 {
		return nil, nil, partitionerr.ArgInvalid(op, "elements must be non-empty")
	}
	indices := make(map[T]int, len(elements))
	ordered := make([]T, 0, len(elements))
	for _, e := range elements {
		if partition.IsNilLike(e) {
			return nil, nil, partitionerr.NullArg(op)
		}
		if _, dup := indices[e]; dup {
			return nil, nil, partitionerr.ArgInvalid(op, "duplicate element")
		}
		indices[e] = len(ordered)
		ordered = append(ordered, e)
	}
	return ordered, indices, nil
}

// materialize turns a raw rgs.Vector source into a sequence of built
// partitions, stopping as soon as either the source is exhausted or the
// factory returns an error.
func materialize[T comparable](op string, ordered []T, indices map[T]int, factory Factory[T], next func() (rgs.Vector, bool)) iter.Seq2[partition.Partition[T], error] {
	return func(yield func(partition.Partition[T], error) bool) {
		for {
			v, ok := next()
			if !ok {
				return
			}
			label := func(t T) (int, error) {
				idx, found := indices[t]
				if !found {
					return 0, partitionerr.NotFound(op)
				}
				return v[idx], nil
			}
			p, err := factory(ordered, label)
			if !yield(p, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Enumerate iterates every partition of elements, with no restriction on
// the number of blocks, in lexicographic order of the underlying RGS
// vector.
func Enumerate[T comparable](elements []T, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerate", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewCoreEnumerator(len(ordered))
	if err != nil {
		return nil, err
	}
	return materialize("enumerate", ordered, indices, factory, e.Next), nil
}

// EnumerateReverse is the exact reversal of Enumerate's output sequence.
func EnumerateReverse[T comparable](elements []T, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateReverse", elements, factory)
	if err != nil {
		return nil, err
	}
	n := len(ordered)
	e, err := rgs.NewReverseEnumerator(n, 1, n)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateReverse", ordered, indices, factory, e.Next), nil
}

// EnumerateAtMost iterates every partition of elements with at most k
// blocks.
func EnumerateAtMost[T comparable](elements []T, k int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateAtMost", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewAtMostKEnumerator(len(ordered), k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateAtMost", ordered, indices, factory, e.Next), nil
}

// EnumerateAtMostReverse is the exact reversal of EnumerateAtMost's output
// sequence.
func EnumerateAtMostReverse[T comparable](elements []T, k int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateAtMostReverse", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewReverseEnumerator(len(ordered), 1, k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateAtMostReverse", ordered, indices, factory, e.Next), nil
}

// EnumerateExactly iterates every partition of elements with exactly k
// blocks.
func EnumerateExactly[T comparable](elements []T, k int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateExactly", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewExactlyKEnumerator(len(ordered), k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateExactly", ordered, indices, factory, e.Next), nil
}

// EnumerateExactlyReverse is the exact reversal of EnumerateExactly's
// output sequence.
func EnumerateExactlyReverse[T comparable](elements []T, k int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateExactlyReverse", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewReverseEnumerator(len(ordered), k, k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateExactlyReverse", ordered, indices, factory, e.Next), nil
}

// EnumerateBetween iterates every partition of elements whose block count
// lies in [kmin, kmax].
func EnumerateBetween[T comparable](elements []T, kmin, kmax int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateBetween", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewBetweenKEnumerator(len(ordered), kmin, kmax)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateBetween", ordered, indices, factory, e.Next), nil
}

// EnumerateBetweenReverse is the exact reversal of EnumerateBetween's
// output sequence.
func EnumerateBetweenReverse[T comparable](elements []T, kmin, kmax int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateBetweenReverse", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewReverseEnumerator(len(ordered), kmin, kmax)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateBetweenReverse", ordered, indices, factory, e.Next), nil
}

// EnumerateIn iterates every partition of elements whose block count is a
// member of the discrete set k.
func EnumerateIn[T comparable](elements []T, k []int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateIn", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewDiscreteKEnumerator(len(ordered), k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateIn", ordered, indices, factory, e.Next), nil
}

// EnumerateInReverse is the exact reversal of EnumerateIn's output
// sequence.
func EnumerateInReverse[T comparable](elements []T, k []int, factory Factory[T]) (iter.Seq2[partition.Partition[T], error], error) {
	ordered, indices, err := prepare("enumerateInReverse", elements, factory)
	if err != nil {
		return nil, err
	}
	e, err := rgs.NewDiscreteKReverseEnumerator(len(ordered), k)
	if err != nil {
		return nil, err
	}
	return materialize("enumerateInReverse", ordered, indices, factory, e.Next), nil
}
