package trie

import (
	"errors"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

func mustGenerate(t *testing.T, p func(rune) bool) CharTrie {
	t.Helper()
	tr, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return tr
}

// TestGenerateASCIIGoldenTable transcribes the spec's concrete trie
// scenario: is_ascii packs to all-ones in the first two level1 words, all
// zero level2/level3 index bytes, a single zero second-level block, and a
// single zero leaf.
func TestGenerateASCIIGoldenTable(t *testing.T) {
	tr := mustGenerate(t, func(c rune) bool { return c >= 0 && c <= 0x7F })

	if len(tr.leaves) != 1 || tr.leaves[0] != 0 {
		t.Fatalf("leaves = %v, want [0]", tr.leaves)
	}
	if len(tr.level3Second) != 1 || tr.level3Second[0] != [64]byte{} {
		t.Fatalf("level3Second = %v, want a single all-zero block", tr.level3Second)
	}
	for i, b := range tr.level3First {
		if b != 0 {
			t.Fatalf("level3First[%d] = %d, want 0", i, b)
		}
	}
	for i, b := range tr.level2 {
		if b != 0 {
			t.Fatalf("level2[%d] = %d, want 0", i, b)
		}
	}
	if tr.level1[0] != ^uint64(0) || tr.level1[1] != ^uint64(0) {
		t.Fatalf("level1[0:2] = %#x, %#x, want all ones", tr.level1[0], tr.level1[1])
	}
	for i := 2; i < Level1Words; i++ {
		if tr.level1[i] != 0 {
			t.Fatalf("level1[%d] = %#x, want 0", i, tr.level1[i])
		}
	}
}

func TestGenerateRoundTripMatchesPredicate(t *testing.T) {
	predicates := map[string]func(rune) bool{
		"ascii":  func(c rune) bool { return c <= 0x7F },
		"latin1": func(c rune) bool { return c <= 0xFF },
		"letter": unicode.IsLetter,
		"digit":  unicode.IsDigit,
		"sparse": func(c rune) bool { return c%997 == 0 },
		"high":   func(c rune) bool { return c >= 0x10000 },
	}

	for name, p := range predicates {
		t.Run(name, func(t *testing.T) {
			tr := mustGenerate(t, p)
			for _, c := range sampleCodepoints() {
				want := p(c)
				if c >= 0xD800 && c <= 0xDFFF {
					want = false
				}
				if got := tr.Contains(c); got != want {
					t.Fatalf("Contains(%U) = %v, want %v", c, got, want)
				}
			}
		})
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	p := unicode.IsLetter

	seq, err := GenerateWithConfig(p, GenConfig{Parallel: false})
	if err != nil {
		t.Fatalf("sequential Generate: %v", err)
	}
	par, err := GenerateWithConfig(p, GenConfig{Parallel: true, Workers: 8})
	if err != nil {
		t.Fatalf("parallel Generate: %v", err)
	}

	if diff := cmp.Diff(seq.leaves, par.leaves); diff != "" {
		t.Fatalf("leaves differ between sequential and parallel generation (-seq +par):\n%s", diff)
	}
	if diff := cmp.Diff(seq.level3Second, par.level3Second); diff != "" {
		t.Fatalf("level3Second differs between sequential and parallel generation (-seq +par):\n%s", diff)
	}
	if seq.level3First != par.level3First {
		t.Fatalf("level3First mismatch")
	}
	if seq.level2 != par.level2 {
		t.Fatalf("level2 mismatch")
	}
}

func TestGenerateOverflow(t *testing.T) {
	// Encode each chunk's own index into its bitmap, so every one of
	// level2's 992 chunks packs to a distinct value: dedup must overflow
	// the 256-entry byte index well before reaching the last chunk.
	p := func(c rune) bool {
		chunkIdx := uint64(c) >> 6
		bit := uint(c) & 0x3F
		return (chunkIdx>>bit)&1 == 1
	}

	_, err := Generate(p)
	if err == nil {
		t.Fatalf("expected overflow, got nil error")
	}
	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("error %v is not a *GenerateError", err)
	}
	if genErr.Stage != "level2" {
		t.Fatalf("overflow reported at stage %q, want level2", genErr.Stage)
	}
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("error %v does not wrap ErrOverflow", err)
	}
}

func sampleCodepoints() []rune {
	cs := []rune{0, 1, 0x3F, 0x40, 0x7F, 0x800, 0x801, 0xD7FF, 0xD800, 0xDBFF, 0xDC00, 0xDFFF, 0xE000, 0xFFFF, 0x10000, 0x10001, 0x10FFFE, 0x10FFFF}
	for c := rune(0x100); c < 0x10000; c += 997 {
		cs = append(cs, c)
	}
	for c := rune(0x10000); c <= 0x10FFFF; c += 50021 {
		cs = append(cs, c)
	}
	return cs
}
