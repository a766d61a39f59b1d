package partition

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/partition/pkg/partitionerr"
)

// Format renders p in the canonical string format of §6:
// "[" block ("," block)* "]" where each block is itself
// "[" element ("," element)* "]". Block and element ordering follows a
// single pass over p.Subsets() / block.All() and carries no semantic
// meaning — the grammar is round-trip parseable, not canonically unique,
// so two calls on an equal-but-differently-ordered partition may render
// differently.
func Format[T comparable](p Partition[T], formatElement func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	firstBlock := true
	for block := range p.Subsets() {
		if !firstBlock {
			sb.WriteByte(',')
		}
		firstBlock = false
		sb.WriteByte('[')
		firstElement := true
		for t := range block.All() {
			if !firstElement {
				sb.WriteByte(',')
			}
			firstElement = false
			sb.WriteString(formatElement(t))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseBlocks parses the canonical string format of §6 into a slice of
// blocks, each a slice of parsed elements, without constructing any
// Partition itself; UnionFindPartition and ImmutablePartition parsing
// constructors both build on this. It rejects malformed input: a missing
// or unmatched top-level bracket, a block not itself wrapped in brackets,
// an unterminated block, an empty block, an empty element token, and any
// element duplicated within a block or across blocks.
func ParseBlocks[T comparable](s string, parseElement func(string) (T, error)) ([][]T, error) {
	if parseElement == nil {
		return nil, partitionerr.NullArgf("parse", "parseElement")
	}
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, partitionerr.ArgInvalid("parse", "input must be wrapped in a single top-level '[' ... ']'")
	}
	body := s[1 : len(s)-1]
	n := len(body)

	var blocks [][]T
	seen := make(map[T]bool)

	i := 0
	for i < n {
		for i < n && isSpace(body[i]) {
			i++
		}
		if i >= n {
			break
		}
		if body[i] != '[' {
			return nil, partitionerr.ArgInvalid("parse", "expected '[' to start a block")
		}

		start := i
		depth := 0
		end := -1
	scan:
		for ; i < n; i++ {
			switch body[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					end = i
					i++
					break scan
				}
			}
		}
		if end == -1 {
			return nil, partitionerr.ArgInvalid("parse", "unterminated block")
		}

		elements, err := parseBlockElements(body[start+1:end], parseElement)
		if err != nil {
			return nil, err
		}
		if len(elements) == 0 {
			return nil, partitionerr.ArgInvalid("parse", "block must not be empty")
		}
		for _, e := range elements {
			if seen[e] {
				return nil, partitionerr.ArgInvalid("parse", "duplicate element across blocks")
			}
			seen[e] = true
		}
		blocks = append(blocks, elements)

		for i < n && isSpace(body[i]) {
			i++
		}
		if i < n {
			if body[i] != ',' {
				return nil, partitionerr.ArgInvalid("parse", "expected ',' between blocks")
			}
			i++
		}
	}
	return blocks, nil
}

func parseBlockElements[T comparable](blockBody string, parseElement func(string) (T, error)) ([]T, error) {
	trimmed := strings.TrimSpace(blockBody)
	if trimmed == "" {
		return nil, nil
	}
	tokens := strings.Split(trimmed, ",")
	seen := make(map[T]bool, len(tokens))
	elements := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, partitionerr.ArgInvalid("parse", "empty element token")
		}
		e, err := parseElement(tok)
		if err != nil {
			return nil, fmt.Errorf("parse: invalid element %q: %w", tok, err)
		}
		if seen[e] {
			return nil, partitionerr.ArgInvalid("parse", "duplicate element within block")
		}
		seen[e] = true
		elements = append(elements, e)
	}
	return elements, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ParseUnionFindPartition parses s in the canonical format of §6 into a
// fresh UnionFindPartition.
func ParseUnionFindPartition[T comparable](s string, parseElement func(string) (T, error)) (*UnionFindPartition[T], error) {
	blocks, err := ParseBlocks(s, parseElement)
	if err != nil {
		return nil, err
	}
	p := NewUnionFindPartition[T]()
	for _, elements := range blocks {
		if err := p.AddSubset(elements); err != nil {
			return nil, err
		}
	}
	return p, nil
}
