package charset

import "github.com/coregx/charset/crange"

// RangeIter is an exact-size, bidirectional, fused sequence over a CharSet's
// contained ranges, in ascending order.
//
// Constructed via CharSet.Ranges.
type RangeIter struct {
	ranges []CharRange
	lo, hi int // half-open [lo, hi) of the remaining slice
}

// Ranges returns an iterator over this set's compact ranges.
func (s CharSet) Ranges() RangeIter {
	return RangeIter{ranges: s.ranges, lo: 0, hi: len(s.ranges)}
}

// Len reports the number of ranges remaining.
func (it RangeIter) Len() int {
	return it.hi - it.lo
}

// Next returns the next range in ascending order, or false if exhausted.
func (it *RangeIter) Next() (CharRange, bool) {
	if it.lo >= it.hi {
		return CharRange{}, false
	}
	r := it.ranges[it.lo]
	it.lo++
	return r, true
}

// NextBack returns the next range in descending order, or false if
// exhausted.
func (it *RangeIter) NextBack() (CharRange, bool) {
	if it.lo >= it.hi {
		return CharRange{}, false
	}
	it.hi--
	return it.ranges[it.hi], true
}

// CharsIter flattens a CharSet's ranges into their individual codepoints,
// in ascending order. Constructed via CharSet.Chars.
type CharsIter struct {
	ranges []CharRange
	idx    int
	cur    crange.Iter
}

// Chars returns an iterator over every codepoint contained in this set, in
// ascending order, flattening the range list the way ranges().flat_map
// does in the original implementation.
func (s CharSet) Chars() *CharsIter {
	return &CharsIter{ranges: s.ranges}
}

// Next returns the next codepoint, or false if exhausted.
func (it *CharsIter) Next() (rune, bool) {
	for {
		if c, ok := it.cur.Next(); ok {
			return c, true
		}
		if it.idx >= len(it.ranges) {
			return 0, false
		}
		it.cur = it.ranges[it.idx].Iter()
		it.idx++
	}
}
