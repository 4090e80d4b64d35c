// Package crange provides CharRange, a compact inclusive interval of Unicode
// scalar values (codepoints in [0, 0x10FFFF] excluding the UTF-16 surrogate
// range [0xD800, 0xDFFF]).
//
// CharRange is the foundation every other type in the charset module builds
// on: charset.CharSet and charset.CharSetBuf store sorted lists of
// CharRanges, and trie.CharTrie is generated by evaluating a predicate
// across all of Unicode. The single cross-cutting concern is the surrogate
// hole: excluded-bound conversion in From and every iteration step route
// through Successor and Predecessor below, and Len subtracts SurrogateGap,
// rather than reimplementing the surrogate test inline. Closed and
// Singleton store their runes as given and do not check them.
//
// # Files
//
//   - range.go: the CharRange type, bound conversion, containment, length
//   - range_iter.go: the bidirectional, exact-size, fused Iter type
//   - range_parallel.go: the dense two-way split used by parallel adapters
package crange

import (
	"fmt"

	"github.com/coregx/charset/internal/debug"
)

const (
	// BeforeSurrogate is the last scalar value below the surrogate hole.
	BeforeSurrogate rune = 0xD7FF
	// AfterSurrogate is the first scalar value above the surrogate hole.
	AfterSurrogate rune = 0xE000
	// MaxRune is the highest legal Unicode scalar value.
	MaxRune rune = 0x10FFFF
	// SurrogateGap is the number of codepoints excluded by the surrogate hole.
	SurrogateGap = int(AfterSurrogate - BeforeSurrogate - 1)
)

// CharRange is an inclusive range of Unicode scalar values.
//
// The range denotes low..=high if low <= high. If high < low, the range is
// empty; Empty returns the canonical empty value, but constructors may
// produce other non-canonical empty states (e.g. Closed('z', 'a')) and all
// of them compare and hash as equal to the canonical empty range.
type CharRange struct {
	// Low is the lowest codepoint in this range (inclusive).
	Low rune
	// High is the highest codepoint in this range (inclusive).
	High rune
}

// Closed constructs the inclusive range low..=high.
//
// Prefer From for conversions from half-open or excluded bounds; Closed is
// the direct, allocation-free constructor for already-inclusive bounds.
func Closed(low, high rune) CharRange {
	return CharRange{Low: low, High: high}
}

// Singleton constructs a range containing exactly one codepoint.
func Singleton(c rune) CharRange {
	return CharRange{Low: c, High: c}
}

// Empty returns the canonical empty range.
func Empty() CharRange {
	return CharRange{Low: MaxRune, High: 0}
}

// Full returns the range covering every legal Unicode scalar value.
func Full() CharRange {
	return CharRange{Low: 0, High: MaxRune}
}

// BoundKind describes how a Bound's Value participates in a range.
type BoundKind uint8

const (
	// Unbounded means the range extends to the natural limit (0 for a low
	// bound, MaxRune for a high bound). Value is ignored.
	Unbounded BoundKind = iota
	// Included means Value itself is a member of the range.
	Included
	// Excluded means Value is adjacent to the range but not a member.
	Excluded
)

// Bound is one endpoint of a range passed to From.
type Bound struct {
	Kind  BoundKind
	Value rune
}

// Incl builds an inclusive bound at c.
func Incl(c rune) Bound { return Bound{Kind: Included, Value: c} }

// Excl builds an exclusive bound at c.
func Excl(c rune) Bound { return Bound{Kind: Excluded, Value: c} }

// Unbound builds an unbounded endpoint.
func Unbound() Bound { return Bound{Kind: Unbounded} }

// From constructs a CharRange from a pair of bounds, the idiomatic
// replacement for converting from Rust's RangeBounds<char>.
//
// Excluded bounds step through Successor/Predecessor, which skip the
// surrogate hole: the successor of U+D7FF is U+E000, and the predecessor of
// U+E000 is U+D7FF. An excluded low bound at MaxRune, or an excluded high
// bound at 0, yields the empty range, since there is no legal codepoint on
// the far side of the step.
func From(low, high Bound) CharRange {
	var lo rune
	switch low.Kind {
	case Excluded:
		s, ok := Successor(low.Value)
		if !ok {
			return Empty()
		}
		lo = s
	case Included:
		lo = low.Value
	default:
		lo = 0
	}

	var hi rune
	switch high.Kind {
	case Excluded:
		p, ok := Predecessor(high.Value)
		if !ok {
			return Empty()
		}
		hi = p
	case Included:
		hi = high.Value
	default:
		hi = MaxRune
	}

	return CharRange{Low: lo, High: hi}
}

// IsScalarValue reports whether c is a legal Unicode scalar value: within
// [0, MaxRune] and outside the surrogate hole.
func IsScalarValue(c rune) bool {
	return c >= 0 && c <= MaxRune && (c < 0xD800 || c > 0xDFFF)
}

// Successor returns the next scalar value after c, skipping the surrogate
// hole, and false if c is MaxRune (no successor exists).
func Successor(c rune) (rune, bool) {
	if c == MaxRune {
		return 0, false
	}
	if c == BeforeSurrogate {
		return AfterSurrogate, true
	}
	return c + 1, true
}

// Predecessor returns the codepoint before c, skipping the surrogate hole,
// and false if c is 0 (no predecessor exists).
func Predecessor(c rune) (rune, bool) {
	if c == 0 {
		return 0, false
	}
	if c == AfterSurrogate {
		return BeforeSurrogate, true
	}
	return c - 1, true
}

// IsEmpty reports whether this range contains no codepoints.
func (r CharRange) IsEmpty() bool {
	return r.Low > r.High
}

// Contains reports whether c lies within this range.
func (r CharRange) Contains(c rune) bool {
	return r.Low <= c && c <= r.High
}

// CmpChar determines the ordering of c relative to this range: -1 if c is
// above the range (r.High < c), +1 if c is below the range (r.Low > c), and
// 0 if c lies within it.
//
// CmpChar must not be called on an empty range. Built with the charsetdebug
// tag, this panics; otherwise it returns an arbitrary non-zero value.
func (r CharRange) CmpChar(c rune) int {
	debug.Assert(!r.IsEmpty(), "CmpChar called on empty range")
	if r.High < c {
		return -1
	}
	if r.Low > c {
		return 1
	}
	return 0
}

// Len returns the number of codepoints in this range, accounting for the
// surrogate hole when the range spans it. Returns 0 for an empty range.
func (r CharRange) Len() int {
	if r.IsEmpty() {
		return 0
	}
	n := int(r.High) - int(r.Low) + 1
	if r.Low <= BeforeSurrogate && r.High >= AfterSurrogate {
		n -= SurrogateGap
	}
	return n
}

// Equal reports whether r and other denote the same set of codepoints. All
// empty ranges compare equal regardless of their internal (Low, High), per
// the canonical-empty-value convention.
func (r CharRange) Equal(other CharRange) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return r == other
}

// Compare returns the lexicographic ordering of (r.Low, r.High) against
// (other.Low, other.High), and false if either range is empty (empty ranges
// form only a partial order and do not compare).
func (r CharRange) Compare(other CharRange) (cmp int, ok bool) {
	if r.IsEmpty() || other.IsEmpty() {
		return 0, false
	}
	if r.Low != other.Low {
		if r.Low < other.Low {
			return -1, true
		}
		return 1, true
	}
	if r.High != other.High {
		if r.High < other.High {
			return -1, true
		}
		return 1, true
	}
	return 0, true
}

// Hash returns a hash consistent with Equal: all empty ranges hash
// identically regardless of internal state.
func (r CharRange) Hash() uint64 {
	low, high := r.Low, r.High
	if r.IsEmpty() {
		low, high = Empty().Low, Empty().High
	}
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, b := range [8]byte{
		byte(low), byte(low >> 8), byte(low >> 16), byte(low >> 24),
		byte(high), byte(high >> 8), byte(high >> 16), byte(high >> 24),
	} {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}

// String renders the range as an inclusive range of U+ codepoint
// notations, e.g. "U+0061..=U+007A", or "(empty)" for any empty range.
func (r CharRange) String() string {
	if r.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%U..=%U", r.Low, r.High)
}
