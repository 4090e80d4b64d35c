// Package charmap provides Map, a mapping from Unicode scalar values to
// arbitrary values, stored as parallel range and value slices the same way
// charset.CharSet stores a plain range list.
//
// This supplements the core codepoint-set library with the range-to-value
// mapping the distilled specification only sketches: a CharSet answers
// "is c a member", Map answers "what value does c carry" — useful for
// things like per-codepoint Unicode category, case-folding targets, or
// script identifiers generated from UCD tables.
//
// # Files
//
//   - map.go: the Map view, its binary search, and the mutable Builder
//   - map_iter.go: RangeValueIter over a Map's (range, value) pairs
package charmap

import (
	"fmt"
	"sort"

	"github.com/coregx/charset/crange"
)

// CharRange is re-exported from crange so callers of this package normally
// need only this one import alongside charset.
type CharRange = crange.CharRange

// Map is a borrowed, immutable view over a sorted, disjoint list of
// (CharRange, T) pairs: ranges[i] maps every codepoint it contains to
// values[i].
//
// The zero value is the empty map. FromRaw wraps caller-owned slices
// without copying, the same binary-compatibility surface CharSet.FromRaw
// provides.
type Map[T any] struct {
	ranges []CharRange
	values []T
}

// FromRaw wraps already-sorted, disjoint parallel slices as a Map without
// copying. Callers are responsible for the sorted-disjoint invariant;
// Builder is the safe way to construct a Map if that isn't already known.
func FromRaw[T any](ranges []CharRange, values []T) Map[T] {
	return Map[T]{ranges: ranges, values: values}
}

// Contains reports whether c has an associated value in this map.
func (m Map[T]) Contains(c rune) bool {
	_, ok := search(m.ranges, c)
	return ok
}

// Get returns the value associated with c, if any.
func (m Map[T]) Get(c rune) (T, bool) {
	idx, ok := search(m.ranges, c)
	if !ok {
		var zero T
		return zero, false
	}
	return m.values[idx], true
}

// Index returns the value associated with c, panicking if c has none. It
// mirrors the original's Index operator, which has no safe Go equivalent
// for a non-map type.
func (m Map[T]) Index(c rune) T {
	v, ok := m.Get(c)
	if !ok {
		panic(fmt.Sprintf("charmap: no entry found for key %U", c))
	}
	return v
}

// Len returns the total number of codepoints mapped, summed across ranges.
func (m Map[T]) Len() int {
	n := 0
	for _, r := range m.ranges {
		n += r.Len()
	}
	return n
}

// IsEmpty reports whether this map has no entries.
func (m Map[T]) IsEmpty() bool {
	return len(m.ranges) == 0
}

// Ranges returns the borrowed list of this map's compact ranges, in the
// same order as their associated values.
func (m Map[T]) Ranges() []CharRange {
	return m.ranges
}

func search(ranges []CharRange, c rune) (int, bool) {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		switch ranges[mid].CmpChar(c) {
		case 0:
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// Builder is the mutable counterpart to Map: it accumulates (range, value)
// pairs in any order and sorts them into a Map on Build.
//
// Unlike charset.CharSetBuf, Builder never merges adjacent ranges — two
// ranges mapping to different values can't be coalesced without losing
// information, so Build instead reports an error if any two ranges overlap.
type Builder[T any] struct {
	ranges []CharRange
	values []T
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Insert records that every codepoint in r maps to v. A no-op if r is
// empty. Overlapping inserts are only detected at Build time.
func (b *Builder[T]) Insert(r CharRange, v T) {
	if r.IsEmpty() {
		return
	}
	b.ranges = append(b.ranges, r)
	b.values = append(b.values, v)
}

// Build sorts the accumulated entries by Low and returns the resulting
// Map, or an error if any two entries' ranges overlap.
func (b *Builder[T]) Build() (Map[T], error) {
	order := make([]int, len(b.ranges))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return b.ranges[order[i]].Low < b.ranges[order[j]].Low
	})

	ranges := make([]CharRange, len(order))
	values := make([]T, len(order))
	for i, j := range order {
		ranges[i] = b.ranges[j]
		values[i] = b.values[j]
	}

	for i := 1; i < len(ranges); i++ {
		if ranges[i].Low <= ranges[i-1].High {
			return Map[T]{}, fmt.Errorf("charmap: overlapping ranges %v and %v", ranges[i-1], ranges[i])
		}
	}

	return Map[T]{ranges: ranges, values: values}, nil
}
