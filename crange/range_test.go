package crange

import (
	"testing"
)

func TestFromBounds(t *testing.T) {
	tests := []struct {
		name       string
		low, high  Bound
		wantLow    rune
		wantHigh   rune
		wantEmpty  bool
	}{
		{"closed a-z", Incl('a'), Incl('z'), 'a', 'z', false},
		{"unbounded both", Unbound(), Unbound(), 0, MaxRune, false},
		{"excluded low at max", Excl(MaxRune), Incl(MaxRune), 0, 0, true},
		{"excluded high at zero", Incl(0), Excl(0), 0, 0, true},
		{"excluded hugs surrogate low", Excl(BeforeSurrogate), Incl(AfterSurrogate), AfterSurrogate, AfterSurrogate, false},
		{"excluded hugs surrogate high", Incl(BeforeSurrogate), Excl(AfterSurrogate), BeforeSurrogate, BeforeSurrogate, false},
		{"half open a..a", Incl('a'), Excl('a'), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.low, tt.high)
			if got.IsEmpty() != tt.wantEmpty {
				t.Fatalf("From(%v, %v).IsEmpty() = %v, want %v", tt.low, tt.high, got.IsEmpty(), tt.wantEmpty)
			}
			if !tt.wantEmpty {
				if got.Low != tt.wantLow || got.High != tt.wantHigh {
					t.Errorf("From(%v, %v) = %U..=%U, want %U..=%U", tt.low, tt.high, got.Low, got.High, tt.wantLow, tt.wantHigh)
				}
			}
		})
	}
}

func TestClosedMatchesFrom(t *testing.T) {
	if Closed('a', 'z') != From(Incl('a'), Incl('z')) {
		t.Error("Closed('a','z') should equal From(Incl('a'), Incl('z'))")
	}
}

func TestContains(t *testing.T) {
	r := Closed('a', 'g')
	if !r.Contains('d') {
		t.Error("'a'..='g' should contain 'd'")
	}
	if r.Contains('z') {
		t.Error("'a'..='g' should not contain 'z'")
	}
	if From(Incl('a'), Excl('a')).Contains('a') {
		t.Error("'a'..'a' (half-open) should not contain 'a'")
	}
	if Closed('z', 'a').Contains('g') {
		t.Error("inverted range 'z'..='a' should not contain 'g'")
	}
}

func TestCmpChar(t *testing.T) {
	r := Closed('c', 'm')
	if r.CmpChar('g') != 0 {
		t.Error("'c'..='m'.CmpChar('g') should be 0 (inside)")
	}
	if r.CmpChar('a') <= 0 {
		t.Error("'c'..='m'.CmpChar('a') should be positive (below range)")
	}
	if r.CmpChar('z') >= 0 {
		t.Error("'c'..='m'.CmpChar('z') should be negative (above range)")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		r    CharRange
		want int
	}{
		{"a-z", Closed('a', 'z'), 26},
		{"surrogate hug", Closed(BeforeSurrogate, AfterSurrogate), 2},
		{"empty", Empty(), 0},
		{"inverted", Closed('z', 'a'), 0},
		{"full", Full(), 0x110000 - 0x800},
		{"singleton", Singleton('x'), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEqualEmptyCanonicalization(t *testing.T) {
	a := Empty()
	b := Closed('z', 'a')
	c := Closed(AfterSurrogate, BeforeSurrogate) // inverted, non-canonical
	if !a.Equal(b) || !a.Equal(c) || !b.Equal(c) {
		t.Error("all empty ranges should compare equal regardless of internal state")
	}
	if a.Hash() != b.Hash() || a.Hash() != c.Hash() {
		t.Error("all empty ranges should hash identically")
	}
}

func TestCompareIsPartialOrder(t *testing.T) {
	if _, ok := Empty().Compare(Closed('a', 'b')); ok {
		t.Error("Compare should report not-ok when either range is empty")
	}
	cmp, ok := Closed('a', 'b').Compare(Closed('a', 'c'))
	if !ok || cmp >= 0 {
		t.Error("'a'..='b' should compare less than 'a'..='c'")
	}
}

func TestSuccessorPredecessorSkipSurrogates(t *testing.T) {
	next, ok := Successor(BeforeSurrogate)
	if !ok || next != AfterSurrogate {
		t.Errorf("Successor(D7FF) = %U, %v, want E000, true", next, ok)
	}
	prev, ok := Predecessor(AfterSurrogate)
	if !ok || prev != BeforeSurrogate {
		t.Errorf("Predecessor(E000) = %U, %v, want D7FF, true", prev, ok)
	}
	if _, ok := Successor(MaxRune); ok {
		t.Error("Successor(MaxRune) should report false")
	}
	if _, ok := Predecessor(0); ok {
		t.Error("Predecessor(0) should report false")
	}
}

func TestIsScalarValue(t *testing.T) {
	if IsScalarValue(0xD800) || IsScalarValue(0xDFFF) {
		t.Error("surrogate codepoints must not be scalar values")
	}
	if !IsScalarValue(0) || !IsScalarValue(MaxRune) {
		t.Error("the endpoints of the legal range must be scalar values")
	}
	if IsScalarValue(MaxRune + 1) {
		t.Error("codepoints above MaxRune must not be scalar values")
	}
}
