package partition

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// immutableBlock is a frozen view of one block: a fixed element slice plus
// a lookup set, built once at construction time.
type immutableBlock[T comparable] struct {
	elements []T
	lookup   map[T]bool
}

func (b *immutableBlock[T]) Len() (int, error) {
	return len(b.elements), nil
}

func (b *immutableBlock[T]) Contains(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("subset")
	}
	return b.lookup[t], nil
}

func (b *immutableBlock[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range b.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// ImmutablePartition is a frozen snapshot of a partition: reads are O(1)
// expected time and every mutator fails with an ErrUnsupported-kind error.
// Block identity (not content) backs Connected, the way the Java original
// compares blocks by reference.
type ImmutablePartition[T comparable] struct {
	blocks []*immutableBlock[T]
	lookup map[T]*immutableBlock[T]
}

func newEmptyImmutablePartition[T comparable]() *ImmutablePartition[T] {
	return &ImmutablePartition[T]{lookup: make(map[T]*immutableBlock[T])}
}

func (p *ImmutablePartition[T]) addBlock(elements []T) {
	if len(elements) == 0 {
		return
	}
	ib := &immutableBlock[T]{elements: elements, lookup: make(map[T]bool, len(elements))}
	for _, e := range elements {
		ib.lookup[e] = true
		p.lookup[e] = ib
	}
	p.blocks = append(p.blocks, ib)
}

// NewImmutablePartition builds an ImmutablePartition by copying the
// current blocks of source.
func NewImmutablePartition[T comparable](source Partition[T]) (*ImmutablePartition[T], error) {
	if source == nil {
		return nil, partitionerr.NullArgf("newImmutablePartition", "source")
	}
	p := newEmptyImmutablePartition[T]()
	for block := range source.Subsets() {
		elements := make([]T, 0, 4)
		for t := range block.All() {
			elements = append(elements, t)
		}
		p.addBlock(elements)
	}
	return p, nil
}

// NewImmutablePartitionFromMap builds an ImmutablePartition containing
// every key of source, grouping two keys into the same block iff their
// values are equal.
func NewImmutablePartitionFromMap[T comparable, L comparable](source map[T]L) (*ImmutablePartition[T], error) {
	if source == nil {
		return nil, partitionerr.NullArgf("newImmutablePartitionFromMap", "source")
	}
	groups := make(map[L][]T, len(source))
	order := make([]L, 0, len(source))
	for k, v := range source {
		if isNilLike(k) {
			return nil, partitionerr.NullArg("newImmutablePartitionFromMap")
		}
		if isNilLike(v) {
			return nil, partitionerr.NullArgf("newImmutablePartitionFromMap", "label")
		}
		if _, ok := groups[v]; !ok {
			order = append(order, v)
		}
		groups[v] = append(groups[v], k)
	}
	p := newEmptyImmutablePartition[T]()
	for _, label := range order {
		p.addBlock(groups[label])
	}
	return p, nil
}

// NewImmutablePartitionFromFunc builds an ImmutablePartition over
// elements, grouping two elements into the same block iff mapping returns
// equal labels for them.
func NewImmutablePartitionFromFunc[T comparable, L comparable](elements []T, mapping func(T) (L, error)) (*ImmutablePartition[T], error) {
	if elements == nil {
		return nil, partitionerr.NullArgf("newImmutablePartitionFromFunc", "elements")
	}
	if mapping == nil {
		return nil, partitionerr.NullArgf("newImmutablePartitionFromFunc", "mapping")
	}
	groups := make(map[L][]T, len(elements))
	order := make([]L, 0, len(elements))
	for _, e := range elements {
		if isNilLike(e) {
			return nil, partitionerr.NullArg("newImmutablePartitionFromFunc")
		}
		label, err := mapping(e)
		if err != nil {
			return nil, err
		}
		if isNilLike(label) {
			return nil, partitionerr.NullArgf("newImmutablePartitionFromFunc", "label")
		}
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], e)
	}
	p := newEmptyImmutablePartition[T]()
	for _, label := range order {
		p.addBlock(groups[label])
	}
	return p, nil
}

// ParseImmutablePartition parses s in the canonical format of §6 directly
// into a frozen ImmutablePartition.
func ParseImmutablePartition[T comparable](s string, parseElement func(string) (T, error)) (*ImmutablePartition[T], error) {
	blocks, err := ParseBlocks(s, parseElement)
	if err != nil {
		return nil, err
	}
	p := newEmptyImmutablePartition[T]()
	for _, elements := range blocks {
		p.addBlock(elements)
	}
	return p, nil
}

func (p *ImmutablePartition[T]) Size() int { return len(p.lookup) }

func (p *ImmutablePartition[T]) SubsetCount() int { return len(p.blocks) }

func (p *ImmutablePartition[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range p.lookup {
			if !yield(t) {
				return
			}
		}
	}
}

func (p *ImmutablePartition[T]) Contains(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("contains")
	}
	_, ok := p.lookup[t]
	return ok, nil
}

func (p *ImmutablePartition[T]) Subsets() iter.Seq[Subset[T]] {
	return func(yield func(Subset[T]) bool) {
		for _, b := range p.blocks {
			if !yield(b) {
				return
			}
		}
	}
}

func (p *ImmutablePartition[T]) Subset(t T) (Subset[T], error) {
	if isNilLike(t) {
		return nil, partitionerr.NullArg("subset")
	}
	b, ok := p.lookup[t]
	if !ok {
		return nil, partitionerr.NotFound("subset")
	}
	return b, nil
}

// Connected compares block identity, the way the Java original compares
// blocks by reference rather than content — valid here because every
// element maps to exactly one of the fixed blocks built at construction.
func (p *ImmutablePartition[T]) Connected(x, y T) (bool, error) {
	if isNilLike(x) || isNilLike(y) {
		return false, partitionerr.NullArg("connected")
	}
	bx, ok := p.lookup[x]
	if !ok {
		return false, partitionerr.NotFound("connected")
	}
	by, ok := p.lookup[y]
	if !ok {
		return false, partitionerr.NotFound("connected")
	}
	return bx == by, nil
}

func (p *ImmutablePartition[T]) Add(t T) (bool, error) {
	return false, partitionerr.Unsupported("add")
}

func (p *ImmutablePartition[T]) AddSubset(elements []T) error {
	return partitionerr.Unsupported("addSubset")
}

func (p *ImmutablePartition[T]) Remove(t T) (bool, error) {
	return false, partitionerr.Unsupported("remove")
}

func (p *ImmutablePartition[T]) RemoveSubset(t T) (bool, error) {
	return false, partitionerr.Unsupported("removeSubset")
}

func (p *ImmutablePartition[T]) Union(x, y T) (bool, error) {
	return false, partitionerr.Unsupported("union")
}

func (p *ImmutablePartition[T]) Split(t T) (bool, error) {
	return false, partitionerr.Unsupported("split")
}

func (p *ImmutablePartition[T]) Move(x, y T) (bool, error) {
	return false, partitionerr.Unsupported("move")
}

func (p *ImmutablePartition[T]) Clear() error {
	return partitionerr.Unsupported("clear")
}
