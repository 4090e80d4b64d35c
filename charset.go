// Package charset provides sets of Unicode scalar values built from compact,
// sorted, non-touching codepoint ranges.
//
// charset achieves logarithmic-time membership testing and zero-allocation
// iteration over sparse Unicode properties by storing codepoints as a
// canonical list of crange.CharRange intervals rather than a bitmap or a
// per-rune map. Three collaborating types cover the read/write split:
//
//   - CharSet is an immutable, borrowed view over a canonical range list —
//     safe to share across goroutines, free to construct from a slice you
//     already own.
//   - CharSetBuf is the mutable owner of a canonical range list, supporting
//     point and range insert/remove while preserving the sorted,
//     pairwise-disjoint, non-touching invariant.
//   - crange.CharRange (re-exported here as CharRange) is the inclusive
//     interval both types are built from.
//
// For static, read-only sets embeddable as constant data (e.g. generated
// from UCD property tables), see the trie package instead: it trades the
// ability to mutate for a four-level compressed lookup table that fits in a
// few kilobytes regardless of how scattered the property is across Unicode.
//
// Basic usage:
//
//	var buf charset.CharSetBuf
//	buf.InsertRange(charset.Closed('a', 'z'))
//	buf.Insert('_')
//	set := buf.AsSet()
//	if set.Contains('q') {
//	    fmt.Println("member")
//	}
//
// # Files
//
//   - charset.go: package doc and CharRange re-export
//   - set.go: the immutable CharSet view, its binary search, and Compare
//   - set_iter.go: RangeIter over a CharSet's ranges
//   - set_buf.go: the mutable CharSetBuf owner and its insert/remove algorithms
//   - set_rangetable.go: interchange with the standard library's unicode.RangeTable
//   - hash.go: the Hash helper mirroring the original's derived Hash
package charset

import "github.com/coregx/charset/crange"

// CharRange is an inclusive interval of Unicode scalar values. It is an
// alias for crange.CharRange so that callers of this package normally need
// only this one import.
type CharRange = crange.CharRange

// MaxRune is the highest legal Unicode scalar value.
const MaxRune = crange.MaxRune

// Bound, BoundKind and their constructors are re-exported from crange so
// that From reads naturally alongside CharRange without a second import.
type (
	// BoundKind describes how a Bound's Value participates in a range.
	BoundKind = crange.BoundKind
	// Bound is one endpoint of a range passed to From.
	Bound = crange.Bound
)

// Closed, Singleton, Empty, Full, From, Incl, Excl and Unbound are
// re-exported from crange for the same reason as CharRange.
var (
	Closed    = crange.Closed
	Singleton = crange.Singleton
	Empty     = crange.Empty
	Full      = crange.Full
	From      = crange.From
	Incl      = crange.Incl
	Excl      = crange.Excl
	Unbound   = crange.Unbound
)
