package charset

import (
	"fmt"
	"strings"
)

// CharSet is a borrowed, immutable view over a canonical list of CharRanges:
// sorted by Low, pairwise disjoint, and non-touching (no two consecutive
// ranges could be merged into one without violating the gap invariant).
//
// The zero value is the empty set. CharSet never allocates; FromRaw wraps a
// caller-owned slice without copying, which is what makes it safe to embed
// a CharSet as generated constant data.
type CharSet struct {
	ranges []CharRange
}

// FromRaw wraps an already-canonical slice of CharRanges as a CharSet
// without copying. Callers are responsible for the canonical-form
// invariant; CharSetBuf.AsSet is the safe way to obtain a CharSet if the
// ranges were not already known to be canonical.
//
// This is the binary-compatibility surface intended for code generators
// that want to embed a CharSet as a package-level var initialized from a
// literal []CharRange.
func FromRaw(ranges []CharRange) CharSet {
	return CharSet{ranges: ranges}
}

// EmptySet returns the empty CharSet.
func EmptySet() CharSet {
	return CharSet{}
}

// Contains reports whether c is a member of this set.
func (s CharSet) Contains(c rune) bool {
	_, ok := search(s.ranges, c)
	return ok
}

// Len returns the total number of codepoints contained across all ranges.
func (s CharSet) Len() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// IsEmpty reports whether this set has no members.
func (s CharSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// search binary-searches ranges for c using CharRange.CmpChar. It returns
// (i, true) if c lies inside ranges[i], or (i, false) where i is the index
// at which a range containing c would need to be inserted to keep ranges
// sorted.
func search(ranges []CharRange, c rune) (int, bool) {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		switch ranges[mid].CmpChar(c) {
		case 0:
			return mid, true
		case -1: // ranges[mid].High < c: c is above this range
			lo = mid + 1
		default: // ranges[mid].Low > c: c is below this range
			hi = mid
		}
	}
	return lo, false
}

// Equal reports whether s and other contain exactly the same codepoints.
// Because canonical form is unique per set, structural equality of the
// range lists is equivalent to set equality.
func (s CharSet) Equal(other CharSet) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}

// Compare returns the lexicographic ordering of s and other's range lists:
// negative if s sorts first, positive if other sorts first, zero if equal.
// A shorter list that is a prefix of a longer one sorts first.
func (s CharSet) Compare(other CharSet) int {
	n := len(s.ranges)
	if len(other.ranges) < n {
		n = len(other.ranges)
	}
	for i := 0; i < n; i++ {
		// Both operands are canonical (non-empty) ranges, so Compare
		// always reports ok=true here.
		if cmp, _ := s.ranges[i].Compare(other.ranges[i]); cmp != 0 {
			return cmp
		}
	}
	return len(s.ranges) - len(other.ranges)
}

// String renders the set as its bracketed range list, e.g.
// "[U+0030-U+0039, U+0061-U+007A]".
func (s CharSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%U-%U", r.Low, r.High)
	}
	b.WriteByte(']')
	return b.String()
}
