package charset

import (
	"testing"
	"unicode"
)

func TestFromRangeTableMatchesStdlib(t *testing.T) {
	buf := FromRangeTable(unicode.ASCII_Hex_Digit)
	set := buf.AsSet()

	for c := rune(0); c <= 0x7F; c++ {
		want := unicode.Is(unicode.ASCII_Hex_Digit, c)
		if got := set.Contains(c); got != want {
			t.Fatalf("Contains(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestToRangeTableRoundTrip(t *testing.T) {
	var buf CharSetBuf
	buf.InsertRange(Closed('a', 'z'))
	buf.InsertRange(Closed(0xFF00, 0xFFEF)) // halfwidth/fullwidth forms
	set := buf.AsSet()

	tab := ToRangeTable(set)

	it := set.Chars()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if !unicode.Is(tab, c) {
			t.Fatalf("round-tripped table is missing %q", c)
		}
	}
	if unicode.Is(tab, 'A') {
		t.Fatalf("round-tripped table unexpectedly contains 'A'")
	}
}

func TestToRangeTableSplitsAtBoundary(t *testing.T) {
	buf := BufFromRange(Closed(0xFFF0, 0x10010))
	tab := ToRangeTable(buf.AsSet())

	if len(tab.R16) != 1 || len(tab.R32) != 1 {
		t.Fatalf("expected one Range16 and one Range32 entry, got %d/%d", len(tab.R16), len(tab.R32))
	}
	if !unicode.Is(tab, 0xFFF0) || !unicode.Is(tab, 0x10010) {
		t.Fatalf("split table lost an endpoint")
	}
	if unicode.Is(tab, 0xFFEF) || unicode.Is(tab, 0x10011) {
		t.Fatalf("split table gained a neighbor")
	}
}
