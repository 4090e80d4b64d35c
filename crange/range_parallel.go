package crange

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/charset/internal/conv"
)

// DenseParts splits this range into the two dense sub-ranges a parallel
// iteration adapter must see: the part below the surrogate hole and the
// part at or above it. Each returned [2]uint32{low, high} pair is dense —
// every integer in [low, high] is a legal codepoint, so a parallel adapter
// can chunk it with plain arithmetic instead of re-deriving the surrogate
// skip on every element.
//
// Either part may be empty; an empty part is always returned as some pair
// with low > high, so callers can test emptiness with a single comparison
// regardless of which half collapsed.
func (r CharRange) DenseParts() (lowPart, highPart [2]uint32) {
	return r.lowDensePart(), r.highDensePart()
}

func (r CharRange) lowDensePart() [2]uint32 {
	if r.IsEmpty() || r.Low > BeforeSurrogate {
		return [2]uint32{1, 0}
	}
	high := r.High
	if high > BeforeSurrogate {
		high = BeforeSurrogate
	}
	return [2]uint32{conv.IntToUint32(int(r.Low)), conv.IntToUint32(int(high))}
}

func (r CharRange) highDensePart() [2]uint32 {
	if r.IsEmpty() || r.High < AfterSurrogate {
		return [2]uint32{1, 0}
	}
	low := r.Low
	if low < AfterSurrogate {
		low = AfterSurrogate
	}
	return [2]uint32{conv.IntToUint32(int(low)), conv.IntToUint32(int(r.High))}
}

// isDenseEmpty reports whether a dense part produced by DenseParts is
// empty.
func isDenseEmpty(part [2]uint32) bool {
	return part[0] > part[1]
}

// ParallelEach is a thin convenience adapter over DenseParts: it calls fn
// once per codepoint in r, fanning work out across workers goroutines via
// golang.org/x/sync/errgroup.
//
// This is deliberately not a general-purpose parallel iterator framework —
// building one is explicitly out of scope (see spec's external-collaborator
// note on parallel iteration adapters). It exists so DenseParts has a real,
// exercised caller instead of being a contract nothing in this module uses.
// Unlike the sequential Iter, the parallel traversal does not preserve
// ascending order, but it is guaranteed to visit each codepoint exactly
// once. If workers <= 0, runtime.GOMAXPROCS(0) is used.
func ParallelEach(ctx context.Context, r CharRange, workers int, fn func(rune) error) error {
	if r.IsEmpty() {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	lowPart, highPart := r.DenseParts()
	for _, part := range [2][2]uint32{lowPart, highPart} {
		if isDenseEmpty(part) {
			continue
		}
		spawnChunks(g, ctx, part, workers, fn)
	}

	return g.Wait()
}

func spawnChunks(g *errgroup.Group, ctx context.Context, part [2]uint32, workers int, fn func(rune) error) {
	total := part[1] - part[0] + 1
	chunk := total / uint32(workers)
	if chunk == 0 {
		chunk = 1
	}

	for start := part[0]; start <= part[1]; start += chunk {
		end := start + chunk - 1
		if end > part[1] || end < start {
			end = part[1]
		}
		start, end := start, end
		g.Go(func() error {
			for c := start; c <= end; c++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := fn(rune(c)); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
