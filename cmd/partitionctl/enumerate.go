package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/papapumpkin/partition/pkg/enumpartition"
	"github.com/papapumpkin/partition/pkg/partition"
)

// runOnce loads the config, builds the element set, enumerates the
// partitions selected by Mode, and prints each one.
func runOnce() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	elements := cfg.Elements
	if len(elements) == 0 {
		elements = generateElements(cfg.Count)
	}

	seq, err := enumerate(elements, cfg.Mode, cfg.Reverse)
	if err != nil {
		return fmt.Errorf("partitionctl: %w", err)
	}

	identity := func(s string) string { return s }
	count := 0
	for p, err := range seq {
		if err != nil {
			return fmt.Errorf("partitionctl: %w", err)
		}
		count++
		fmt.Printf("%5d  %s\n", count, partition.Format[string](p, identity))
	}
	fmt.Printf("%d partition(s)\n", count)
	return nil
}

func generateElements(count int) []string {
	if count <= 0 {
		count = 1
	}
	elements := make([]string, count)
	for i := range elements {
		elements[i] = uuid.NewString()
	}
	return elements
}

// enumerate dispatches on mode, one of "all", "exactly:k", "atmost:k",
// "between:kmin,kmax", or "in:k1,k2,...", to the matching
// enumpartition.Enumerate* entry point.
func enumerate(elements []string, mode string, reverse bool) (partitionSeq, error) {
	kind, nums, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	factory := enumpartition.ImmutableFactory[string]

	switch kind {
	case "all":
		if reverse {
			return enumpartition.EnumerateReverse(elements, factory)
		}
		return enumpartition.Enumerate(elements, factory)
	case "exactly":
		if reverse {
			return enumpartition.EnumerateExactlyReverse(elements, nums[0], factory)
		}
		return enumpartition.EnumerateExactly(elements, nums[0], factory)
	case "atmost":
		if reverse {
			return enumpartition.EnumerateAtMostReverse(elements, nums[0], factory)
		}
		return enumpartition.EnumerateAtMost(elements, nums[0], factory)
	case "between":
		if reverse {
			return enumpartition.EnumerateBetweenReverse(elements, nums[0], nums[1], factory)
		}
		return enumpartition.EnumerateBetween(elements, nums[0], nums[1], factory)
	case "in":
		if reverse {
			return enumpartition.EnumerateInReverse(elements, nums, factory)
		}
		return enumpartition.EnumerateIn(elements, nums, factory)
	default:
		return nil, fmt.Errorf("unrecognized mode %q", mode)
	}
}

// partitionSeq is the iterator type every enumpartition.Enumerate*
// function returns for a string element type.
type partitionSeq = func(yield func(partition.Partition[string], error) bool)

func parseMode(mode string) (string, []int, error) {
	mode = strings.TrimSpace(mode)
	if mode == "all" || mode == "" {
		return "all", nil, nil
	}

	parts := strings.SplitN(mode, ":", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("mode %q must be \"all\" or \"kind:args\"", mode)
	}
	kind, arg := parts[0], parts[1]

	switch kind {
	case "exactly", "atmost":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return "", nil, fmt.Errorf("mode %q: %w", mode, err)
		}
		return kind, []int{n}, nil
	case "between":
		nums, err := parseIntList(arg)
		if err != nil {
			return "", nil, fmt.Errorf("mode %q: %w", mode, err)
		}
		if len(nums) != 2 {
			return "", nil, fmt.Errorf("mode %q: between requires exactly kmin,kmax", mode)
		}
		return kind, nums, nil
	case "in":
		nums, err := parseIntList(arg)
		if err != nil {
			return "", nil, fmt.Errorf("mode %q: %w", mode, err)
		}
		return kind, nums, nil
	default:
		return "", nil, fmt.Errorf("unrecognized mode kind %q", kind)
	}
}

func parseIntList(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	nums := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
