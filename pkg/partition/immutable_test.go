package partition

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

func TestNewImmutablePartitionFromSource(t *testing.T) {
	t.Parallel()
	src := NewUnionFindPartition[string]()
	must(t, src.AddSubset([]string{"a", "b"}))
	must(t, src.AddSubset([]string{"c"}))

	p, err := NewImmutablePartition[string](src)
	if err != nil {
		t.Fatalf("NewImmutablePartition: %v", err)
	}
	if p.Size() != 3 || p.SubsetCount() != 2 {
		t.Fatalf("Size/SubsetCount = %d/%d, want 3/2", p.Size(), p.SubsetCount())
	}
	if !Equal[string](src, p) {
		t.Error("immutable copy not Equal to source")
	}

	if _, err := NewImmutablePartition[string](nil); err == nil {
		t.Error("NewImmutablePartition(nil) = nil error, want error")
	}
}

func TestNewImmutablePartitionFromMap(t *testing.T) {
	t.Parallel()
	src := map[string]int{"a": 1, "b": 2, "c": 1}
	p, err := NewImmutablePartitionFromMap[string, int](src)
	if err != nil {
		t.Fatalf("NewImmutablePartitionFromMap: %v", err)
	}
	connected, err := p.Connected("a", "c")
	if err != nil || !connected {
		t.Errorf("Connected(a,c) = %v, %v, want true, nil", connected, err)
	}

	if _, err := NewImmutablePartitionFromMap[string, int](nil); err == nil {
		t.Error("NewImmutablePartitionFromMap(nil) = nil error, want error")
	}
}

func TestNewImmutablePartitionFromFunc(t *testing.T) {
	t.Parallel()
	elements := []string{"aa", "bb", "c", "dd"}
	mapping := func(s string) (int, error) { return len(s), nil }
	p, err := NewImmutablePartitionFromFunc[string, int](elements, mapping)
	if err != nil {
		t.Fatalf("NewImmutablePartitionFromFunc: %v", err)
	}
	if p.SubsetCount() != 2 {
		t.Fatalf("SubsetCount() = %d, want 2", p.SubsetCount())
	}

	if _, err := NewImmutablePartitionFromFunc[string, int](nil, mapping); err == nil {
		t.Error("NewImmutablePartitionFromFunc(nil elements) = nil error, want error")
	}
	if _, err := NewImmutablePartitionFromFunc[string, int](elements, nil); err == nil {
		t.Error("NewImmutablePartitionFromFunc(nil mapping) = nil error, want error")
	}
}

func TestImmutablePartitionReads(t *testing.T) {
	t.Parallel()
	p, err := ParseImmutablePartition[string]("[[a,b],[c]]", identityParse)
	if err != nil {
		t.Fatalf("ParseImmutablePartition: %v", err)
	}
	if p.Size() != 3 || p.SubsetCount() != 2 {
		t.Fatalf("Size/SubsetCount = %d/%d, want 3/2", p.Size(), p.SubsetCount())
	}
	contains, err := p.Contains("a")
	if err != nil || !contains {
		t.Errorf("Contains(a) = %v, %v, want true, nil", contains, err)
	}
	contains, err = p.Contains("z")
	if err != nil || contains {
		t.Errorf("Contains(z) = %v, %v, want false, nil", contains, err)
	}

	sub, err := p.Subset("a")
	if err != nil {
		t.Fatalf("Subset(a): %v", err)
	}
	var got []string
	for e := range sub.All() {
		got = append(got, e)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got, cmpopts.SortSlices(lessString)); diff != "" {
		t.Errorf("Subset(a) elements mismatch (-want +got):\n%s", diff)
	}

	if _, err := p.Subset("z"); !errors.Is(err, partitionerr.ErrNotFound) {
		t.Errorf("Subset(missing) err = %v, want NotFound-kind", err)
	}
}

func TestImmutablePartitionMutatorsUnsupported(t *testing.T) {
	t.Parallel()
	p, err := ParseImmutablePartition[string]("[[a,b]]", identityParse)
	if err != nil {
		t.Fatalf("ParseImmutablePartition: %v", err)
	}

	checks := []func() error{
		func() error { _, err := p.Add("z"); return err },
		func() error { return p.AddSubset([]string{"z"}) },
		func() error { _, err := p.Remove("a"); return err },
		func() error { _, err := p.RemoveSubset("a"); return err },
		func() error { _, err := p.Union("a", "b"); return err },
		func() error { _, err := p.Split("a"); return err },
		func() error { _, err := p.Move("a", "b"); return err },
		func() error { return p.Clear() },
	}
	for i, check := range checks {
		if err := check(); !errors.Is(err, partitionerr.ErrUnsupported) {
			t.Errorf("mutator[%d] err = %v, want ErrUnsupported-kind", i, err)
		}
	}
}

func identityParse(s string) (string, error) { return s, nil }
