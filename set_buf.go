package charset

import (
	"github.com/coregx/charset/crange"
	"github.com/coregx/charset/internal/debug"
)

// CharSetBuf is the mutable owner of a canonical range list: sorted by Low,
// pairwise disjoint, and non-touching. Every exported method leaves the set
// in canonical form.
//
// The zero value is a valid empty CharSetBuf.
type CharSetBuf struct {
	ranges []CharRange
}

// NewBuf returns an empty CharSetBuf. Provided for parity with the sized
// and from-* constructors below; the zero value works identically.
func NewBuf() CharSetBuf {
	return CharSetBuf{}
}

// NewBufWithCapacity returns an empty CharSetBuf whose backing slice has
// capacity for n ranges without reallocating.
func NewBufWithCapacity(n int) CharSetBuf {
	return CharSetBuf{ranges: make([]CharRange, 0, n)}
}

// BufFromRange returns a CharSetBuf containing exactly r (or empty, if r is
// empty).
func BufFromRange(r CharRange) CharSetBuf {
	var b CharSetBuf
	b.InsertRange(r)
	return b
}

// BufFromChars returns a CharSetBuf containing exactly the given
// codepoints, normalized into canonical ranges.
func BufFromChars(chars ...rune) CharSetBuf {
	var b CharSetBuf
	b.ExtendChars(chars...)
	return b
}

// BufFromRanges returns a CharSetBuf containing the union of the given
// ranges, normalized into canonical form.
func BufFromRanges(ranges ...CharRange) CharSetBuf {
	b := NewBufWithCapacity(len(ranges))
	b.Extend(ranges...)
	return b
}

// AsSet borrows this buffer's current contents as an immutable CharSet.
// The returned CharSet aliases the buffer's backing array: mutating the
// buffer afterward invalidates any previously obtained CharSet exactly the
// way mutating a slice invalidates an old sub-slice's contents.
func (b *CharSetBuf) AsSet() CharSet {
	return CharSet{ranges: b.ranges}
}

// Contains reports whether c is a member of this set.
func (b *CharSetBuf) Contains(c rune) bool {
	_, ok := search(b.ranges, c)
	return ok
}

// Len returns the total number of codepoints contained across all ranges.
func (b *CharSetBuf) Len() int {
	return b.AsSet().Len()
}

// IsEmpty reports whether this set has no members.
func (b *CharSetBuf) IsEmpty() bool {
	return len(b.ranges) == 0
}

// Clear empties this set without releasing its backing array.
func (b *CharSetBuf) Clear() {
	b.ranges = b.ranges[:0]
}

// insertAt inserts r at index idx, shifting later elements up by one.
func (b *CharSetBuf) insertAt(idx int, r CharRange) {
	b.ranges = append(b.ranges, CharRange{})
	copy(b.ranges[idx+1:], b.ranges[idx:])
	b.ranges[idx] = r
}

// removeAt deletes the range at index idx, shifting later elements down.
func (b *CharSetBuf) removeAt(idx int) {
	b.ranges = append(b.ranges[:idx], b.ranges[idx+1:]...)
}

// ordinal maps a legal codepoint to its position in the ordinal space with
// the surrogate hole collapsed out, so that subtracting two ordinals counts
// steps the way the "is this a mergeable gap" checks throughout this file
// need to: the distance from U+D7FF to U+E000 is 1, not 0x801.
func ordinal(c rune) int {
	if c >= crange.AfterSurrogate {
		return int(c) - crange.SurrogateGap
	}
	return int(c)
}

// withinOneStep reports whether inserting a single extra codepoint between
// below and above would bridge them into one contiguous range, i.e. below
// and above are equal, adjacent, or separated only by the surrogate hole.
func withinOneStep(below, above rune) bool {
	return ordinal(above)-ordinal(below) <= 1
}

// Insert adds a single codepoint to this set. Equivalent to
// InsertRange(Singleton(c)).
func (b *CharSetBuf) Insert(c rune) {
	b.InsertRange(crange.Singleton(c))
}

// InsertRange merges r into this set, coalescing with and subsuming any
// ranges it touches or overlaps. A no-op if r is empty. Runs in
// O(k + log n) where k is the number of ranges subsumed.
func (b *CharSetBuf) InsertRange(r CharRange) {
	if r.IsEmpty() {
		return
	}

	li, lowChar := 0, r.Low
	if i, ok := search(b.ranges, r.Low); ok {
		li, lowChar = i, b.ranges[i].Low
	} else {
		li = i
	}
	if li > 0 && withinOneStep(b.ranges[li-1].High, lowChar) {
		li--
		lowChar = b.ranges[li].Low
	}

	hi, highChar := 0, r.High
	if i, ok := search(b.ranges, r.High); ok {
		hi, highChar = i+1, b.ranges[i].High
	} else {
		hi, highChar = i, r.High
	}
	if hi < len(b.ranges) && withinOneStep(highChar, b.ranges[hi].Low) {
		highChar = b.ranges[hi].High
		hi++
	}

	if li == hi {
		b.insertAt(li, crange.Closed(lowChar, highChar))
		return
	}
	b.ranges[li] = crange.Closed(lowChar, highChar)
	b.ranges = append(b.ranges[:li+1], b.ranges[hi:]...)
}

// Remove deletes a single codepoint from this set, if present.
func (b *CharSetBuf) Remove(c rune) {
	idx, ok := search(b.ranges, c)
	if !ok {
		return
	}
	this := b.ranges[idx]
	switch {
	case this.Len() == 1:
		b.removeAt(idx)
	case this.Low == c:
		succ, _ := crange.Successor(c)
		b.ranges[idx] = crange.Closed(succ, this.High)
	case this.High == c:
		pred, _ := crange.Predecessor(c)
		b.ranges[idx] = crange.Closed(this.Low, pred)
	default:
		pred, _ := crange.Predecessor(c)
		succ, _ := crange.Successor(c)
		low := this.Low
		b.ranges[idx] = crange.Closed(succ, this.High)
		b.insertAt(idx, crange.Closed(low, pred))
	}
}

// RemoveRange deletes every codepoint in r from this set. A no-op if r is
// empty. Runs in O(k + log n) where k is the number of ranges touched.
func (b *CharSetBuf) RemoveRange(r CharRange) {
	if r.IsEmpty() {
		return
	}

	low, _ := search(b.ranges, r.Low)
	hIdx, hOk := search(b.ranges, r.High)
	high := hIdx
	if hOk {
		high = hIdx + 1
	}

	switch {
	case low == high:
		// r lies entirely in a gap between ranges; no change.
		debug.Assert(!b.Contains(r.Low), "RemoveRange: gap case but Low is contained")
		debug.Assert(!b.Contains(r.High), "RemoveRange: gap case but High is contained")

	case low+1 == high:
		split := b.ranges[low]
		switch {
		case split.Low >= r.Low && split.High <= r.High:
			b.removeAt(low)
		case split.Low >= r.Low:
			succ, _ := crange.Successor(r.High)
			b.ranges[low] = crange.Closed(succ, split.High)
		case split.High <= r.High:
			pred, _ := crange.Predecessor(r.Low)
			b.ranges[low] = crange.Closed(split.Low, pred)
		default:
			pred, _ := crange.Predecessor(r.Low)
			succ, _ := crange.Successor(r.High)
			topHigh := split.High
			b.ranges[low] = crange.Closed(split.Low, pred)
			b.insertAt(high, crange.Closed(succ, topHigh))
		}

	default:
		pred, predOk := crange.Predecessor(r.Low)
		leftShrunk := crange.Closed(b.ranges[low].Low, pred)
		if !predOk {
			leftShrunk = crange.Empty()
		}
		hi := high - 1
		succ, succOk := crange.Successor(r.High)
		rightShrunk := crange.Closed(succ, b.ranges[hi].High)
		if !succOk {
			rightShrunk = crange.Empty()
		}

		// Boundary coincidence (r.Low == ranges[low].Low, or symmetrically
		// for the high end) can shrink an end range to empty; such a range
		// must be dropped rather than left as a dangling empty entry.
		replacement := make([]CharRange, 0, 2)
		if !leftShrunk.IsEmpty() {
			replacement = append(replacement, leftShrunk)
		}
		if !rightShrunk.IsEmpty() {
			replacement = append(replacement, rightShrunk)
		}

		tail := append([]CharRange(nil), b.ranges[high:]...)
		b.ranges = append(b.ranges[:low], replacement...)
		b.ranges = append(b.ranges, tail...)
	}
}

// Extend merges each of the given ranges into this set, equivalent to
// calling InsertRange in a loop.
func (b *CharSetBuf) Extend(ranges ...CharRange) {
	for _, r := range ranges {
		b.InsertRange(r)
	}
}

// ExtendChars inserts each of the given codepoints into this set,
// equivalent to calling Insert in a loop.
func (b *CharSetBuf) ExtendChars(chars ...rune) {
	for _, c := range chars {
		b.Insert(c)
	}
}
