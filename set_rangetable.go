package charset

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// maxR16 is the highest codepoint representable by a unicode.Range16 entry.
const maxR16 = 0xFFFF

// FromRangeTable builds a CharSetBuf containing every codepoint covered by
// tab, letting any *unicode.RangeTable from the standard library (or
// generated by x/text's rangetable.New) seed a mutable set.
func FromRangeTable(tab *unicode.RangeTable) CharSetBuf {
	var b CharSetBuf
	rangetable.Visit(tab, b.Insert)
	return b
}

// ToRangeTable renders s as a *unicode.RangeTable, splitting any range that
// straddles the 16/32-bit boundary into its Range16 and Range32 halves. The
// result interoperates with unicode.Is and the rest of the standard
// library's Unicode tables.
func ToRangeTable(s CharSet) *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, 0, s.Ranges().Len())
	it := s.Ranges()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		tabs = append(tabs, rangeTableFor(r))
	}
	return rangetable.Merge(tabs...)
}

func rangeTableFor(r CharRange) *unicode.RangeTable {
	switch {
	case r.High <= maxR16:
		return &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(r.Low), Hi: uint16(r.High), Stride: 1}},
		}
	case r.Low > maxR16:
		return &unicode.RangeTable{
			R32: []unicode.Range32{{Lo: uint32(r.Low), Hi: uint32(r.High), Stride: 1}},
		}
	default:
		return &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(r.Low), Hi: maxR16, Stride: 1}},
			R32: []unicode.Range32{{Lo: maxR16 + 1, Hi: uint32(r.High), Stride: 1}},
		}
	}
}
