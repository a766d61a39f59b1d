// Package partition represents and manipulates partitions of a finite set
// of hashable, comparable elements: families of nonempty, pairwise-disjoint
// blocks whose union is the element set.
//
// Two implementations are provided. UnionFindPartition is a mutable
// disjoint-set structure supporting union, find, deletion, move and split
// with amortized inverse-Ackermann bounds. ImmutablePartition is a frozen
// snapshot with O(1) expected-time reads and no mutators.
package partition

import (
	"fmt"
	"hash/fnv"
	"iter"
	"reflect"
)

// Partition is the contract every implementation in this package satisfies.
// T must be comparable so elements can key an internal lookup table; the
// library does not itself depend on any concrete hash-map implementation
// beyond that language-level requirement.
type Partition[T comparable] interface {
	// Size returns the number of elements in the partition.
	Size() int
	// SubsetCount returns the number of blocks in the partition.
	SubsetCount() int
	// Elements returns a view over the element set. The returned sequence
	// reflects subsequent mutations of the partition for mutable
	// implementations.
	Elements() iter.Seq[T]
	// Subsets returns a view over the set of blocks.
	Subsets() iter.Seq[Subset[T]]
	// Contains reports whether t is an element of this partition.
	Contains(t T) (bool, error)
	// Subset returns a view of the block containing t.
	Subset(t T) (Subset[T], error)
	// Connected reports whether x and y are in the same block.
	Connected(x, y T) (bool, error)
	// Add inserts t as a new singleton block, returning false if t was
	// already present.
	Add(t T) (bool, error)
	// AddSubset inserts a whole new block, none of whose elements may
	// already be present.
	AddSubset(elements []T) error
	// Remove deletes t from the partition, returning false if absent.
	Remove(t T) (bool, error)
	// RemoveSubset deletes the entire block containing t, returning false
	// if t was absent.
	RemoveSubset(t T) (bool, error)
	// Union merges the blocks of x and y, returning false if already merged.
	Union(x, y T) (bool, error)
	// Split isolates t into a new singleton block, returning false if t was
	// already a singleton.
	Split(t T) (bool, error)
	// Move places x into y's block; equivalent to Split(x) then Union(x,y).
	Move(x, y T) (bool, error)
	// Clear empties the partition. Implementations that cannot support
	// mutation return an ErrUnsupported-kind error instead.
	Clear() error
}

// Subset is a read-only view of one block of a partition.
type Subset[T comparable] interface {
	// Len returns the number of elements in the block. For mutable
	// partitions this fails with a NotFound-kind error if the view's
	// anchor element has since been removed (a stale view).
	Len() (int, error)
	// Contains reports whether t is a member of this block.
	Contains(t T) (bool, error)
	// All iterates the block's members. A stale view (its anchor element
	// has been removed and not reinserted) yields no elements; this
	// package chooses silent divergence over a panicking iterator,
	// since both are permitted by the partition contract.
	All() iter.Seq[T]
}

// Equal reports whether a and b are equal partitions per invariant P3:
// equal iff their sets of blocks are equal, independent of block identity
// or iteration order.
func Equal[T comparable](a, b Partition[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	if a.SubsetCount() != b.SubsetCount() {
		return false
	}
	for blockA := range a.Subsets() {
		var anchor T
		found := false
		for t := range blockA.All() {
			anchor = t
			found = true
			break
		}
		if !found {
			// Invariant P2 forbids empty blocks; treat as mismatch rather
			// than panic if a caller-built Partition violates it.
			return false
		}
		blockB, err := b.Subset(anchor)
		if err != nil {
			return false
		}
		lenA, _ := blockA.Len()
		lenB, err := blockB.Len()
		if err != nil || lenA != lenB {
			return false
		}
		for t := range blockA.All() {
			ok, err := blockB.Contains(t)
			if err != nil || !ok {
				return false
			}
		}
	}
	return true
}

// Hash returns a hash code for p that is a pure function of block contents,
// consistent with Equal: equal partitions always hash equally. It does not
// integrate with, or require, any particular hash-map implementation.
func Hash[T comparable](p Partition[T]) uint64 {
	var total uint64
	for e := range p.Elements() {
		block, err := p.Subset(e)
		if err != nil {
			continue
		}
		var blockHash uint64
		for t := range block.All() {
			blockHash ^= hashValue(t)
		}
		total += hashValue(e) ^ blockHash
	}
	return total
}

func hashValue(v any) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%#v", v)
	return h.Sum64()
}

// IsNilLike is the exported form of isNilLike, for use by sibling packages
// (enumpartition) that need the same null-argument check this package
// applies internally.
func IsNilLike[T any](t T) bool {
	return isNilLike(t)
}

// isNilLike reports whether t is a reference-kind value (pointer, interface,
// map, slice, channel, or function) that is currently nil. Value-kind T
// (int, string, structs, ...) can never be "null" in Go's sense, so this
// always reports false for them; that is the Go-idiomatic reading of the
// "must not be null" contract clauses from the partition specification.
func isNilLike[T any](t T) bool {
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Invalid:
		// t is a nil interface value.
		return true
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
