package trie

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/charset/internal/bitpack"
	"github.com/coregx/charset/internal/conv"
)

// GenConfig controls how Generate evaluates the predicate across Unicode.
type GenConfig struct {
	// Parallel evaluates the predicate across chunks concurrently before
	// deduplication. Dedup itself always runs sequentially in chunk order
	// so that leaf and block indices remain stable regardless of Parallel.
	Parallel bool
	// Workers caps concurrent goroutines when Parallel is true. Zero means
	// unbounded (errgroup.SetLimit(-1)).
	Workers int
}

// DefaultGenConfig returns the sequential generation config.
func DefaultGenConfig() GenConfig {
	return GenConfig{Parallel: false, Workers: runtime.GOMAXPROCS(0)}
}

// Generate builds a CharTrie from p using DefaultGenConfig.
func Generate(p func(rune) bool) (CharTrie, error) {
	return GenerateWithConfig(p, DefaultGenConfig())
}

// GenerateWithConfig builds a CharTrie from p, a deterministic membership
// predicate. It returns ErrOverflow (wrapped in a *GenerateError) if
// representing p would need more than 256 distinct leaves or more than 256
// distinct second-level blocks.
//
// Output is a pure function of p and is independent of cfg.Parallel: both
// paths store each chunk's bitmap at that chunk's own index and dedup
// sequentially in chunk order, so leaf and block indices are identical
// either way.
func GenerateWithConfig(p func(rune) bool, cfg GenConfig) (CharTrie, error) {
	level1 := generateLevel1(p)

	leaves := newDedupLeaves()

	level2Chunks := evalChunks(0x800, Level2Size, p, true, cfg)
	var level2 [Level2Size]byte
	for i, chunk := range level2Chunks {
		idx, err := leaves.insert(chunk)
		if err != nil {
			return CharTrie{}, &GenerateError{Stage: "level2", Index: i, Err: err}
		}
		level2[i] = idx
	}

	leafChunks := evalChunks(level3Base, Level3FirstSize*blockSize, p, false, cfg)
	blocks := newDedupBlocks()
	var level3First [Level3FirstSize]byte
	for b := 0; b < Level3FirstSize; b++ {
		var block [blockSize]byte
		for k := 0; k < blockSize; k++ {
			idx, err := leaves.insert(leafChunks[b*blockSize+k])
			if err != nil {
				return CharTrie{}, &GenerateError{Stage: "level3-leaf", Index: b*blockSize + k, Err: err}
			}
			block[k] = idx
		}
		bIdx, err := blocks.insert(block)
		if err != nil {
			return CharTrie{}, &GenerateError{Stage: "level3-block", Index: b, Err: err}
		}
		level3First[b] = bIdx
	}

	return CharTrie{
		level1:       level1,
		level2:       level2,
		level3First:  level3First,
		level3Second: blocks.order,
		leaves:       leaves.order,
	}, nil
}

// generateLevel1 evaluates p across [0, 0x800) and packs the result into
// Level1Words little-endian 64-bit words.
func generateLevel1(p func(rune) bool) [Level1Words]uint64 {
	bits := make([]bool, level2Base)
	for c := range bits {
		bits[c] = p(rune(c))
	}
	words := bitpack.PackWords(bits)
	var level1 [Level1Words]uint64
	copy(level1[:], words)
	return level1
}

// evalChunks evaluates p across n consecutive 64-codepoint chunks starting
// at base, returning one packed bitmap per chunk. When skipSurrogates is
// set, codepoints in [0xD800, 0xDFFF] are forced to false regardless of p,
// matching level2's coverage of the surrogate hole. When cfg.Parallel is
// set, chunks are computed concurrently; the result order is unaffected
// since each chunk writes only its own slot.
func evalChunks(base, n int, p func(rune) bool, skipSurrogates bool, cfg GenConfig) []uint64 {
	chunks := make([]uint64, n)
	compute := func(i int) uint64 {
		return computeChunk(base+i*blockSize, p, skipSurrogates)
	}

	if !cfg.Parallel {
		for i := range chunks {
			chunks[i] = compute(i)
		}
		return chunks
	}

	g, _ := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := range chunks {
		i := i
		g.Go(func() error {
			chunks[i] = compute(i)
			return nil
		})
	}
	// compute never errors; the returned error is always nil and exists
	// only so evalChunks could grow an error path later without breaking
	// callers.
	_ = g.Wait()
	return chunks
}

func computeChunk(base int, p func(rune) bool, skipSurrogates bool) uint64 {
	var bits [blockSize]bool
	for j := 0; j < blockSize; j++ {
		c := base + j
		if skipSurrogates && c >= 0xD800 && c <= 0xDFFF {
			continue
		}
		bits[j] = p(rune(c))
	}
	return bitpack.PackChunk(bits)
}

// dedupLeaves is an insertion-ordered, byte-indexed set of leaf bitmaps.
type dedupLeaves struct {
	order []uint64
	index map[uint64]byte
}

func newDedupLeaves() *dedupLeaves {
	return &dedupLeaves{index: make(map[uint64]byte)}
}

func (d *dedupLeaves) insert(v uint64) (byte, error) {
	if idx, ok := d.index[v]; ok {
		return idx, nil
	}
	if len(d.order) >= 256 {
		return 0, ErrOverflow
	}
	idx := conv.IntToByte(len(d.order))
	d.order = append(d.order, v)
	d.index[v] = idx
	return idx, nil
}

// dedupBlocks is an insertion-ordered, byte-indexed set of second-level
// blocks.
type dedupBlocks struct {
	order [][blockSize]byte
	index map[[blockSize]byte]byte
}

func newDedupBlocks() *dedupBlocks {
	return &dedupBlocks{index: make(map[[blockSize]byte]byte)}
}

func (d *dedupBlocks) insert(v [blockSize]byte) (byte, error) {
	if idx, ok := d.index[v]; ok {
		return idx, nil
	}
	if len(d.order) >= 256 {
		return 0, ErrOverflow
	}
	idx := conv.IntToByte(len(d.order))
	d.order = append(d.order, v)
	d.index[v] = idx
	return idx, nil
}
