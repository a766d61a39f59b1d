package partition

import (
	"iter"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// DebugInvariants enables O(size) structural-invariant validation after
// every UnionFindPartition mutator. It is off by default; flip it on in
// tests or during development, the way the original Java implementation's
// `assert`-gated validate() calls only ran with assertions enabled.
var DebugInvariants = false

// item is one node of a UnionFindPartition: a disjoint-set forest node that
// also participates in two intrusive cyclic doubly-linked lists — one over
// the elements of its block (nextItem/prevItem), and, if it is currently a
// root, one over all block roots (nextRoot/prevRoot).
type item[T comparable] struct {
	value    T
	parent   *item[T]
	size     int // valid only at roots: number of elements in this block
	nextItem *item[T]
	prevItem *item[T]
	nextRoot *item[T] // valid only at roots
	prevRoot *item[T] // valid only at roots
}

func newSingleton[T comparable](value T) *item[T] {
	it := &item[T]{value: value, size: 1}
	it.parent = it
	it.nextItem = it
	it.prevItem = it
	return it
}

// root finds the representative of it's block using path splitting: every
// visited node's parent is retargeted to its grandparent in the same pass.
func (it *item[T]) root() *item[T] {
	t := it
	for t.parent != t.parent.parent {
		next := t.parent
		t.parent = next.parent
		t = next
	}
	return t.parent
}

// rootNoCompress finds the representative without mutating any parent
// pointers; used only by the debug-invariant validator.
func (it *item[T]) rootNoCompress() *item[T] {
	t := it
	for t != t.parent {
		t = t.parent
	}
	return t
}

// UnionFindPartition is a mutable disjoint-set structure supporting union,
// find, deletion, move and split, all with amortized bounds governed by the
// inverse Ackermann function (path splitting + union-by-size). It is not
// safe for concurrent mutation.
type UnionFindPartition[T comparable] struct {
	items   map[T]*item[T]
	anyRoot *item[T]
	count   int
}

// NewUnionFindPartition constructs an empty UnionFindPartition.
func NewUnionFindPartition[T comparable]() *UnionFindPartition[T] {
	return &UnionFindPartition[T]{items: make(map[T]*item[T])}
}

// NewUnionFindPartitionFrom constructs a UnionFindPartition by copying the
// blocks of source.
func NewUnionFindPartitionFrom[T comparable](source Partition[T]) (*UnionFindPartition[T], error) {
	if source == nil {
		return nil, partitionerr.NullArgf("newUnionFindPartitionFrom", "source")
	}
	p := NewUnionFindPartition[T]()
	for block := range source.Subsets() {
		members := make([]T, 0, 4)
		for t := range block.All() {
			members = append(members, t)
		}
		if err := p.AddSubset(members); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewUnionFindPartitionFromMap constructs a UnionFindPartition containing
// every key of source, grouping two keys into the same block iff their
// values are equal.
func NewUnionFindPartitionFromMap[T comparable, L comparable](source map[T]L) (*UnionFindPartition[T], error) {
	if source == nil {
		return nil, partitionerr.NullArgf("newUnionFindPartitionFromMap", "source")
	}
	groups := make(map[L][]T, len(source))
	order := make([]L, 0, len(source))
	for k, v := range source {
		if isNilLike(k) {
			return nil, partitionerr.NullArg("newUnionFindPartitionFromMap")
		}
		if isNilLike(v) {
			return nil, partitionerr.NullArgf("newUnionFindPartitionFromMap", "label")
		}
		if _, ok := groups[v]; !ok {
			order = append(order, v)
		}
		groups[v] = append(groups[v], k)
	}
	p := NewUnionFindPartition[T]()
	for _, label := range order {
		if err := p.AddSubset(groups[label]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewUnionFindPartitionFromFunc constructs a UnionFindPartition over
// elements, grouping two elements into the same block iff mapping returns
// equal labels for them.
func NewUnionFindPartitionFromFunc[T comparable, L comparable](elements []T, mapping func(T) (L, error)) (*UnionFindPartition[T], error) {
	if elements == nil {
		return nil, partitionerr.NullArgf("newUnionFindPartitionFromFunc", "elements")
	}
	if mapping == nil {
		return nil, partitionerr.NullArgf("newUnionFindPartitionFromFunc", "mapping")
	}
	groups := make(map[L][]T, len(elements))
	order := make([]L, 0, len(elements))
	for _, e := range elements {
		if isNilLike(e) {
			return nil, partitionerr.NullArg("newUnionFindPartitionFromFunc")
		}
		label, err := mapping(e)
		if err != nil {
			return nil, err
		}
		if isNilLike(label) {
			return nil, partitionerr.NullArgf("newUnionFindPartitionFromFunc", "label")
		}
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], e)
	}
	p := NewUnionFindPartition[T]()
	for _, label := range order {
		if err := p.AddSubset(groups[label]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *UnionFindPartition[T]) get(op string, t T) (*item[T], error) {
	if isNilLike(t) {
		return nil, partitionerr.NullArg(op)
	}
	it, ok := p.items[t]
	if !ok {
		return nil, partitionerr.NotFound(op)
	}
	return it, nil
}

func (p *UnionFindPartition[T]) addToRootList(it *item[T]) {
	if p.anyRoot == nil {
		it.nextRoot = it
		it.prevRoot = it
		p.anyRoot = it
		return
	}
	oldNext := p.anyRoot.nextRoot
	it.nextRoot = oldNext
	it.prevRoot = p.anyRoot
	p.anyRoot.nextRoot = it
	oldNext.prevRoot = it
}

func (p *UnionFindPartition[T]) removeFromRootList(it *item[T]) {
	if it.nextRoot == it {
		p.anyRoot = nil
		return
	}
	p.anyRoot = it.prevRoot
	p.anyRoot.nextRoot = it.nextRoot
	it.nextRoot.prevRoot = p.anyRoot
}

// Root returns the arbitrary-but-stable representative element of t's
// block.
func (p *UnionFindPartition[T]) Root(t T) (T, error) {
	it, err := p.get("root", t)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.root().value, nil
}

// Size returns the number of elements in the partition.
func (p *UnionFindPartition[T]) Size() int { return len(p.items) }

// SubsetCount returns the number of blocks in the partition.
func (p *UnionFindPartition[T]) SubsetCount() int { return p.count }

// Elements iterates every element currently in the partition, in no
// particular order.
func (p *UnionFindPartition[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range p.items {
			if !yield(t) {
				return
			}
		}
	}
}

// Contains reports whether t is an element of this partition.
func (p *UnionFindPartition[T]) Contains(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("contains")
	}
	_, ok := p.items[t]
	return ok, nil
}

// Subsets iterates every block of the partition, starting from an
// arbitrary root and following the root cycle exactly once around.
func (p *UnionFindPartition[T]) Subsets() iter.Seq[Subset[T]] {
	return func(yield func(Subset[T]) bool) {
		if p.anyRoot == nil {
			return
		}
		start := p.anyRoot
		current := start
		for {
			if !yield(&ufpSubset[T]{p: p, anchor: current.value}) {
				return
			}
			current = current.nextRoot
			if current == start {
				return
			}
		}
	}
}

// Subset returns a view of the block containing t.
func (p *UnionFindPartition[T]) Subset(t T) (Subset[T], error) {
	if _, err := p.get("subset", t); err != nil {
		return nil, err
	}
	return &ufpSubset[T]{p: p, anchor: t}, nil
}

// Connected reports whether x and y are in the same block.
func (p *UnionFindPartition[T]) Connected(x, y T) (bool, error) {
	itemX, err := p.get("connected", x)
	if err != nil {
		return false, err
	}
	itemY, err := p.get("connected", y)
	if err != nil {
		return false, err
	}
	return itemX.root() == itemY.root(), nil
}

// Add inserts t as a new singleton block.
func (p *UnionFindPartition[T]) Add(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("add")
	}
	if _, ok := p.items[t]; ok {
		return false, nil
	}
	it := newSingleton(t)
	p.items[t] = it
	p.addToRootList(it)
	p.count++
	p.validate()
	return true, nil
}

// AddSubset inserts a whole new block. elements must be non-empty, contain
// no element already present in the partition, and contain no duplicates.
func (p *UnionFindPartition[T]) AddSubset(elements []T) error {
	if elements == nil {
		return partitionerr.NullArgf("addSubset", "elements")
	}
	if len(elements) == 0 {
		return partitionerr.ArgInvalid("addSubset", "subset must be non-empty")
	}
	seen := make(map[T]bool, len(elements))
	for _, e := range elements {
		if isNilLike(e) {
			return partitionerr.NullArg("addSubset")
		}
		if seen[e] {
			return partitionerr.ArgInvalid("addSubset", "duplicate element in subset")
		}
		if _, ok := p.items[e]; ok {
			return partitionerr.ArgInvalid("addSubset", "element already present in partition")
		}
		seen[e] = true
	}

	root := newSingleton(elements[0])
	root.size = len(elements)
	p.items[elements[0]] = root

	current := root
	for _, e := range elements[1:] {
		it := &item[T]{value: e, parent: root, size: 1}
		p.items[e] = it
		current.nextItem = it
		it.prevItem = current
		current = it
	}
	current.nextItem = root
	root.prevItem = current

	p.addToRootList(root)
	p.count++
	p.validate()
	return nil
}

// Remove deletes t from the partition.
func (p *UnionFindPartition[T]) Remove(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("remove")
	}
	target, ok := p.items[t]
	if !ok {
		return false, nil
	}

	if target.nextItem == target {
		p.removeFromRootList(target)
		delete(p.items, t)
		p.count--
		p.validate()
		return true, nil
	}

	if target.parent == target {
		neighbor := target.nextItem
		target.value, neighbor.value = neighbor.value, target.value
		p.items[target.value] = target
		p.items[neighbor.value] = neighbor
		target = neighbor
	}

	root := target.root()
	target.prevItem.nextItem = target.nextItem
	target.nextItem.prevItem = target.prevItem
	delete(p.items, t)
	root.size--
	p.validate()
	return true, nil
}

// RemoveSubset deletes the entire block containing t.
func (p *UnionFindPartition[T]) RemoveSubset(t T) (bool, error) {
	if isNilLike(t) {
		return false, partitionerr.NullArg("removeSubset")
	}
	start, ok := p.items[t]
	if !ok {
		return false, nil
	}
	root := start.root()
	current := root
	for {
		delete(p.items, current.value)
		current = current.nextItem
		if current == root {
			break
		}
	}
	p.removeFromRootList(root)
	p.count--
	p.validate()
	return true, nil
}

// Union merges the blocks of x and y using union-by-size, splicing their
// block cycles into one in the same pass.
func (p *UnionFindPartition[T]) Union(x, y T) (bool, error) {
	item1, err := p.get("union", x)
	if err != nil {
		return false, err
	}
	item2, err := p.get("union", y)
	if err != nil {
		return false, err
	}

	root1 := item1.root()
	root2 := item2.root()
	if root1 == root2 {
		return false, nil
	}

	if root1.size >= root2.size {
		root2.parent = root1
		p.removeFromRootList(root2)
		root1.size += root2.size
	} else {
		root1.parent = root2
		p.removeFromRootList(root1)
		root2.size += root1.size
	}

	tmp := item1.nextItem
	item1.nextItem = item2.nextItem
	item2.nextItem.prevItem = item1
	item2.nextItem = tmp
	tmp.prevItem = item2

	p.count--
	p.validate()
	return true, nil
}

// Split isolates t into a new singleton block.
func (p *UnionFindPartition[T]) Split(t T) (bool, error) {
	target, err := p.get("split", t)
	if err != nil {
		return false, err
	}
	if target.nextItem == target {
		return false, nil
	}

	if target.parent == target {
		neighbor := target.nextItem
		target.value, neighbor.value = neighbor.value, target.value
		p.items[target.value] = target
		p.items[neighbor.value] = neighbor
		target = neighbor
	}

	root := target.root()
	target.prevItem.nextItem = target.nextItem
	target.nextItem.prevItem = target.prevItem

	newItem := newSingleton(t)
	p.items[t] = newItem
	p.addToRootList(newItem)

	root.size--
	p.count++
	p.validate()
	return true, nil
}

// Move places x into y's block. Equivalent to Split(x) followed by
// Union(x, y), but takes the fast no-op path when they are already in the
// same block.
func (p *UnionFindPartition[T]) Move(x, y T) (bool, error) {
	itemX, err := p.get("move", x)
	if err != nil {
		return false, err
	}
	itemY, err := p.get("move", y)
	if err != nil {
		return false, err
	}
	if itemX.root() == itemY.root() {
		return false, nil
	}
	if _, err := p.Split(x); err != nil {
		return false, err
	}
	if _, err := p.Union(x, y); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the partition.
func (p *UnionFindPartition[T]) Clear() error {
	p.items = make(map[T]*item[T])
	p.anyRoot = nil
	p.count = 0
	p.validate()
	return nil
}

// validate checks the structural invariants of §4.2: the root cycle's
// length equals the subset count, every block cycle's length equals its
// root's size, and every item is reachable from its root by a finite
// parent chain. It is a no-op unless DebugInvariants is set, since it costs
// O(size) and is meant for development and tests, not production hot
// paths.
func (p *UnionFindPartition[T]) validate() {
	if !DebugInvariants {
		return
	}
	if p.anyRoot == nil {
		if p.count != 0 {
			panic("partition: invariant violated: anyRoot is nil but subset count is not zero")
		}
	} else {
		n := 1
		for cur := p.anyRoot.nextRoot; cur != p.anyRoot; cur = cur.nextRoot {
			n++
			if n > p.count {
				panic("partition: invariant violated: root cycle longer than subset count")
			}
		}
		if n != p.count {
			panic("partition: invariant violated: root cycle length does not match subset count")
		}
	}

	roots := make(map[*item[T]]bool, p.count)
	for value, it := range p.items {
		if it.value != value {
			panic("partition: invariant violated: lookup key does not match item value")
		}
		root := it.rootNoCompress()
		roots[root] = true
		n := 1
		for cur := it.nextItem; cur != it; cur = cur.nextItem {
			n++
			if n > root.size {
				panic("partition: invariant violated: block cycle longer than root size")
			}
		}
		if n != root.size {
			panic("partition: invariant violated: block cycle length does not match root size")
		}
	}
	if len(roots) != p.count {
		panic("partition: invariant violated: number of distinct roots does not match subset count")
	}
}

// ufpSubset is a live view of one block of a UnionFindPartition, anchored
// on an element value rather than an Item pointer so that it correctly
// reports NotFound once its anchor is removed (see the Subset interface
// docs on stale views), and correctly tracks a reinserted anchor's new block.
type ufpSubset[T comparable] struct {
	p      *UnionFindPartition[T]
	anchor T
}

func (s *ufpSubset[T]) Len() (int, error) {
	it, ok := s.p.items[s.anchor]
	if !ok {
		return 0, partitionerr.NotFound("subset")
	}
	return it.root().size, nil
}

func (s *ufpSubset[T]) Contains(t T) (bool, error) {
	anchorItem, ok := s.p.items[s.anchor]
	if !ok {
		return false, partitionerr.NotFound("subset")
	}
	if isNilLike(t) {
		return false, partitionerr.NullArg("subset")
	}
	it, ok := s.p.items[t]
	if !ok {
		return false, nil
	}
	return it.root() == anchorItem.root(), nil
}

func (s *ufpSubset[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		start, ok := s.p.items[s.anchor]
		if !ok {
			return
		}
		current := start
		for {
			if !yield(current.value) {
				return
			}
			current = current.nextItem
			if current == start {
				return
			}
		}
	}
}
