package partition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMain_DebugInvariantsEnabled(t *testing.T) {
	// Every other test in this package runs with structural-invariant
	// validation turned on, so a regression in the linked-list bookkeeping
	// surfaces as a panic instead of a silently wrong answer later.
	DebugInvariants = true
}

func lessString(a, b string) bool { return a < b }

func elementsOf(t *testing.T, p Partition[string]) []string {
	t.Helper()
	var got []string
	for e := range p.Elements() {
		got = append(got, e)
	}
	return got
}

func blockOf(t *testing.T, p Partition[string], anchor string) []string {
	t.Helper()
	sub, err := p.Subset(anchor)
	if err != nil {
		t.Fatalf("Subset(%q): %v", anchor, err)
	}
	var got []string
	for e := range sub.All() {
		got = append(got, e)
	}
	return got
}

func TestNewUnionFindPartitionEmpty(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	if p.Size() != 0 {
		t.Errorf("Size() = %d, want 0", p.Size())
	}
	if p.SubsetCount() != 0 {
		t.Errorf("SubsetCount() = %d, want 0", p.SubsetCount())
	}
}

func TestAddAndUnion(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()

	for _, e := range []string{"a", "b", "c", "d"} {
		ok, err := p.Add(e)
		if err != nil || !ok {
			t.Fatalf("Add(%q) = %v, %v", e, ok, err)
		}
	}
	if p.SubsetCount() != 4 {
		t.Fatalf("SubsetCount() = %d, want 4", p.SubsetCount())
	}

	if ok, err := p.Add("a"); err != nil || ok {
		t.Errorf("re-Add(a) = %v, %v, want false, nil", ok, err)
	}

	if ok, err := p.Union("a", "b"); err != nil || !ok {
		t.Fatalf("Union(a,b) = %v, %v", ok, err)
	}
	if ok, err := p.Union("a", "b"); err != nil || ok {
		t.Errorf("re-Union(a,b) = %v, %v, want false, nil", ok, err)
	}
	if p.SubsetCount() != 3 {
		t.Fatalf("SubsetCount() = %d, want 3", p.SubsetCount())
	}

	connected, err := p.Connected("a", "b")
	if err != nil || !connected {
		t.Errorf("Connected(a,b) = %v, %v, want true, nil", connected, err)
	}
	connected, err = p.Connected("a", "c")
	if err != nil || connected {
		t.Errorf("Connected(a,c) = %v, %v, want false, nil", connected, err)
	}

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, blockOf(t, p, "a"), cmpopts.SortSlices(lessString)); diff != "" {
		t.Errorf("block(a) mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSubset(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	if err := p.AddSubset([]string{"x", "y", "z"}); err != nil {
		t.Fatalf("AddSubset: %v", err)
	}
	if p.Size() != 3 || p.SubsetCount() != 1 {
		t.Fatalf("Size/SubsetCount = %d/%d, want 3/1", p.Size(), p.SubsetCount())
	}
	want := []string{"x", "y", "z"}
	if diff := cmp.Diff(want, blockOf(t, p, "y"), cmpopts.SortSlices(lessString)); diff != "" {
		t.Errorf("block(y) mismatch (-want +got):\n%s", diff)
	}

	if err := p.AddSubset(nil); err == nil {
		t.Error("AddSubset(nil) = nil error, want error")
	}
	if err := p.AddSubset([]string{}); err == nil {
		t.Error("AddSubset(empty) = nil error, want error")
	}
	if err := p.AddSubset([]string{"x"}); err == nil {
		t.Error("AddSubset with already-present element = nil error, want error")
	}
	if err := p.AddSubset([]string{"w", "w"}); err == nil {
		t.Error("AddSubset with internal duplicate = nil error, want error")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b", "c"}))

	ok, err := p.Remove("b")
	if err != nil || !ok {
		t.Fatalf("Remove(b) = %v, %v", ok, err)
	}
	if p.Size() != 2 {
		t.Errorf("Size() = %d, want 2", p.Size())
	}
	want := []string{"a", "c"}
	if diff := cmp.Diff(want, blockOf(t, p, "a"), cmpopts.SortSlices(lessString)); diff != "" {
		t.Errorf("block(a) mismatch (-want +got):\n%s", diff)
	}

	ok, err = p.Remove("nope")
	if err != nil || ok {
		t.Errorf("Remove(missing) = %v, %v, want false, nil", ok, err)
	}

	// Removing the root of a multi-element block must not strand the
	// block: the remaining elements must stay connected to each other.
	ok, err = p.Remove("a")
	if err != nil || !ok {
		t.Fatalf("Remove(a) = %v, %v", ok, err)
	}
	connected, err := p.Connected("c", "c")
	if err != nil || !connected {
		t.Errorf("Connected(c,c) after root removal = %v, %v", connected, err)
	}
	if p.SubsetCount() != 1 {
		t.Errorf("SubsetCount() = %d, want 1", p.SubsetCount())
	}
}

func TestSubsetStaleView(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b"}))

	sub, err := p.Subset("a")
	if err != nil {
		t.Fatalf("Subset(a): %v", err)
	}
	if _, err := p.Remove("a"); err != nil {
		t.Fatalf("Remove(a): %v", err)
	}

	if _, err := sub.Len(); err == nil {
		t.Error("stale Len() = nil error, want NotFound-kind error")
	}
	if _, err := sub.Contains("b"); err == nil {
		t.Error("stale Contains() = nil error, want NotFound-kind error")
	}
	n := 0
	for range sub.All() {
		n++
	}
	if n != 0 {
		t.Errorf("stale All() yielded %d elements, want 0", n)
	}
}

func TestSplitAndMove(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b", "c"}))

	ok, err := p.Split("b")
	if err != nil || !ok {
		t.Fatalf("Split(b) = %v, %v", ok, err)
	}
	if p.SubsetCount() != 2 {
		t.Errorf("SubsetCount() = %d, want 2", p.SubsetCount())
	}
	connected, _ := p.Connected("a", "b")
	if connected {
		t.Error("Connected(a,b) after split = true, want false")
	}

	ok, err = p.Split("b")
	if err != nil || ok {
		t.Errorf("re-Split(singleton) = %v, %v, want false, nil", ok, err)
	}

	ok, err = p.Move("b", "a")
	if err != nil || !ok {
		t.Fatalf("Move(b,a) = %v, %v", ok, err)
	}
	connected, _ = p.Connected("a", "b")
	if !connected {
		t.Error("Connected(a,b) after move = false, want true")
	}

	ok, err = p.Move("b", "a")
	if err != nil || ok {
		t.Errorf("re-Move(already there) = %v, %v, want false, nil", ok, err)
	}
}

func TestRemoveSubset(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b", "c"}))
	must(t, p.AddSubset([]string{"d", "e"}))

	ok, err := p.RemoveSubset("b")
	if err != nil || !ok {
		t.Fatalf("RemoveSubset(b) = %v, %v", ok, err)
	}
	if p.Size() != 2 || p.SubsetCount() != 1 {
		t.Fatalf("Size/SubsetCount = %d/%d, want 2/1", p.Size(), p.SubsetCount())
	}
	if contains, _ := p.Contains("a"); contains {
		t.Error("Contains(a) after RemoveSubset(b) = true, want false")
	}
	if contains, _ := p.Contains("d"); !contains {
		t.Error("Contains(d) after RemoveSubset(b) = false, want true")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b"}))
	if err := p.Clear(); err != nil {
		t.Fatalf("Clear(): %v", err)
	}
	if p.Size() != 0 || p.SubsetCount() != 0 {
		t.Errorf("Size/SubsetCount after Clear = %d/%d, want 0/0", p.Size(), p.SubsetCount())
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[string]()
	must(t, p.AddSubset([]string{"a", "b", "c"}))

	rootA, err := p.Root("a")
	if err != nil {
		t.Fatalf("Root(a): %v", err)
	}
	rootB, err := p.Root("b")
	if err != nil {
		t.Fatalf("Root(b): %v", err)
	}
	if rootA != rootB {
		t.Errorf("Root(a) = %q, Root(b) = %q, want equal", rootA, rootB)
	}

	if _, err := p.Root("missing"); err == nil {
		t.Error("Root(missing) = nil error, want error")
	}
}

func TestNewUnionFindPartitionFrom(t *testing.T) {
	t.Parallel()
	src := NewUnionFindPartition[string]()
	must(t, src.AddSubset([]string{"a", "b"}))
	must(t, src.AddSubset([]string{"c"}))

	p, err := NewUnionFindPartitionFrom[string](src)
	if err != nil {
		t.Fatalf("NewUnionFindPartitionFrom: %v", err)
	}
	if !Equal[string](src, p) {
		t.Error("copy not Equal to source")
	}

	if _, err := NewUnionFindPartitionFrom[string](nil); err == nil {
		t.Error("NewUnionFindPartitionFrom(nil) = nil error, want error")
	}
}

func TestNewUnionFindPartitionFromMap(t *testing.T) {
	t.Parallel()
	src := map[string]int{"a": 1, "b": 2, "c": 1, "d": 3}
	p, err := NewUnionFindPartitionFromMap[string, int](src)
	if err != nil {
		t.Fatalf("NewUnionFindPartitionFromMap: %v", err)
	}
	if p.SubsetCount() != 3 {
		t.Fatalf("SubsetCount() = %d, want 3", p.SubsetCount())
	}
	connected, _ := p.Connected("a", "c")
	if !connected {
		t.Error("Connected(a,c) = false, want true")
	}
}

func TestNewUnionFindPartitionFromFunc(t *testing.T) {
	t.Parallel()
	elements := []string{"a", "b", "c", "d"}
	mapping := func(s string) (int, error) { return len(s) % 2, nil }
	p, err := NewUnionFindPartitionFromFunc[string, int](elements, mapping)
	if err != nil {
		t.Fatalf("NewUnionFindPartitionFromFunc: %v", err)
	}
	if p.Size() != 4 {
		t.Errorf("Size() = %d, want 4", p.Size())
	}
}

func TestNullArgRejected(t *testing.T) {
	t.Parallel()
	p := NewUnionFindPartition[*int]()
	if _, err := p.Add(nil); err == nil {
		t.Error("Add(nil) = nil error, want error")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
