package crange

// Iter is a finite, restartable, bidirectional, exact-size sequence of
// codepoints in ascending order, transparently skipping the surrogate hole.
//
// Constructed via CharRange.Iter. Once exhausted, an Iter never yields
// again (it is "fused"): Next and NextBack keep returning false after the
// underlying range collapses to empty.
type Iter struct {
	low, high rune
}

// Iter returns an iterator over this range's codepoints.
func (r CharRange) Iter() Iter {
	return Iter{low: r.Low, high: r.High}
}

// IsEmpty reports whether this iterator is exhausted.
func (it Iter) IsEmpty() bool {
	return it.low > it.high
}

// Len reports the exact number of codepoints remaining.
func (it Iter) Len() int {
	return CharRange{Low: it.low, High: it.high}.Len()
}

// Next returns the next codepoint in ascending order, or false if the
// iterator is exhausted.
func (it *Iter) Next() (rune, bool) {
	if it.IsEmpty() {
		return 0, false
	}
	c := it.low
	it.stepForward()
	return c, true
}

// NextBack returns the next codepoint in descending order (from the high
// end), or false if the iterator is exhausted.
func (it *Iter) NextBack() (rune, bool) {
	if it.IsEmpty() {
		return 0, false
	}
	c := it.high
	it.stepBackward()
	return c, true
}

// stepForward advances low to its successor. Exhaustion at the top of the
// codepoint space collapses the range to canonical-empty by zeroing high,
// rather than overflowing low past MaxRune.
func (it *Iter) stepForward() {
	if it.low == MaxRune {
		it.high = 0
		return
	}
	s, _ := Successor(it.low)
	it.low = s
}

// stepBackward moves high to its predecessor. Exhaustion at the bottom of
// the codepoint space collapses the range to canonical-empty by raising low
// to MaxRune, rather than underflowing high below 0.
func (it *Iter) stepBackward() {
	if it.high == 0 {
		it.low = MaxRune
		return
	}
	p, _ := Predecessor(it.high)
	it.high = p
}

// Collect drains the iterator forward into a slice.
func (it Iter) Collect() []rune {
	out := make([]rune, 0, it.Len())
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

// CollectReverse drains the iterator backward into a slice, i.e. the
// reverse of what Collect would produce from the same starting state.
func (it Iter) CollectReverse() []rune {
	out := make([]rune, 0, it.Len())
	for {
		c, ok := it.NextBack()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}
