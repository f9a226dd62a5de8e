package uniqseq

import (
	"fmt"
	"math"

	set3 "github.com/TomTonic/Set3"
)

// Strategy names accepted by ChooserFor.
const (
	StrategyNaive    = "naive"
	StrategyBitfield = "bitfield"
	StrategySet      = "set"
	StrategyUnique   = "unique"
)

// ChooseFunc produces count distinct integers in [0, max], in an order
// determined by seed.
type ChooseFunc func(count int, max, seed uint32) ([]uint32, error)

// ChooserFor returns the strategy registered under name.
func ChooserFor(name string) (ChooseFunc, error) {
	switch name {
	case StrategyNaive:
		return ChooseNaive, nil
	case StrategyBitfield:
		return ChooseBitfield, nil
	case StrategySet:
		return ChooseSet, nil
	case StrategyUnique:
		return ChooseUnique, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// ChooseNaive draws uniform candidates and rescans the output so far for
// every one of them. Dead simple and quadratic; it exists as the lower
// baseline for the other strategies.
func ChooseNaive(count int, max, seed uint32) ([]uint32, error) {
	if err := checkChooseArgs(count, max); err != nil {
		return nil, err
	}
	rng := NewRand(uint64(seed))
	out := make([]uint32, 0, count)
candidates:
	for len(out) < count {
		c := drawTo(rng, max)
		for _, prev := range out {
			if prev == c {
				continue candidates
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// ChooseBitfield draws uniform candidates and tracks seen values in a packed
// bitfield, one bit per possible value. Lookups are constant time, but the
// allocation grows with the universe rather than with count.
func ChooseBitfield(count int, max, seed uint32) ([]uint32, error) {
	if err := checkChooseArgs(count, max); err != nil {
		return nil, err
	}
	rng := NewRand(uint64(seed))
	seen := make([]uint64, uint64(max)/64+1)
	out := make([]uint32, 0, count)
	for len(out) < count {
		c := drawTo(rng, max)
		word, mask := c>>6, uint64(1)<<(c&63)
		if seen[word]&mask != 0 {
			continue
		}
		seen[word] |= mask
		out = append(out, c)
	}
	return out, nil
}

// ChooseSet draws uniform candidates and tracks seen values in a hash set,
// trading the bitfield's universe-sized allocation for memory proportional
// to count.
func ChooseSet(count int, max, seed uint32) ([]uint32, error) {
	if err := checkChooseArgs(count, max); err != nil {
		return nil, err
	}
	rng := NewRand(uint64(seed))
	capacity := uint64(count) * 7 / 5
	if capacity > math.MaxUint32 {
		capacity = math.MaxUint32
	}
	seen := set3.EmptyWithCapacity[uint32](uint32(capacity))
	out := make([]uint32, 0, count)
	for len(out) < count {
		c := drawTo(rng, max)
		if seen.Contains(c) {
			continue
		}
		seen.Add(c)
		out = append(out, c)
	}
	return out, nil
}

// ChooseUnique draws from a Generator, which guarantees distinctness by
// construction: no tracking state and no duplicate candidates to retry. The
// duplicate-free stream is one Period() long: when max is itself a prime
// congruent 3 mod 4 (or above the largest selectable prime) that is max
// rather than max+1, and longer requests are rejected.
func ChooseUnique(count int, max, seed uint32) ([]uint32, error) {
	if err := checkChooseArgs(count, max); err != nil {
		return nil, err
	}
	g, err := New(uint64(max), seed)
	if err != nil {
		return nil, err
	}
	if uint64(count) > uint64(g.Period()) {
		return nil, fmt.Errorf("choose: %w: the sequence over [0, %d] repeats after %d values, cannot pick %d",
			ErrInvalidRange, max, g.Period(), count)
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}

func checkChooseArgs(count int, max uint32) error {
	if count < 0 {
		return fmt.Errorf("choose: %w: negative count %d", ErrInvalidRange, count)
	}
	if uint64(count) > uint64(max)+1 {
		return fmt.Errorf("choose: %w: cannot pick %d distinct values from [0, %d]", ErrInvalidRange, count, max)
	}
	return nil
}

// drawTo returns a uniform draw from [0, max] inclusive.
func drawTo(rng *Rand, max uint32) uint32 {
	if max == math.MaxUint32 {
		return rng.Uint32()
	}
	return rng.Uint32N(max + 1)
}
