package uniqseq

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStrategies = []string{StrategyNaive, StrategyBitfield, StrategySet, StrategyUnique}

func TestChoosers_DistinctAndInRange(t *testing.T) {
	for _, name := range allStrategies {
		t.Run(name, func(t *testing.T) {
			choose, err := ChooserFor(name)
			assert.NoError(t, err)

			seq, err := choose(600, 999, 42)
			assert.NoError(t, err)
			assert.Len(t, seq, 600)
			for _, v := range seq {
				if v > 999 {
					t.Fatalf("value %d above max 999", v)
				}
			}
			assert.NoError(t, Check(seq))
		})
	}
}

func TestChoosers_FullUniverse(t *testing.T) {
	// count == max+1 forces every strategy to emit the whole universe
	for _, name := range allStrategies {
		t.Run(name, func(t *testing.T) {
			choose, err := ChooserFor(name)
			assert.NoError(t, err)

			seq, err := choose(512, 511, 7)
			assert.NoError(t, err)
			slices.Sort(seq)
			for i, v := range seq {
				assert.EqualValues(t, i, v)
			}
		})
	}
}

func TestChooseUnique_RangeEndingOnSuitablePrime(t *testing.T) {
	// 11 and 10007 are primes congruent 3 mod 4: the modulus equals the range
	// bound and the duplicate-free stream is max values long, not max+1
	for _, c := range []struct{ max, seed uint32 }{{11, 1}, {10007, 42}} {
		_, err := ChooseUnique(int(c.max)+1, c.max, c.seed)
		assert.ErrorIs(t, err, ErrInvalidRange, "max %d", c.max)

		seq, err := ChooseUnique(int(c.max), c.max, c.seed)
		assert.NoError(t, err, "max %d", c.max)
		assert.Len(t, seq, int(c.max), "max %d", c.max)
		assert.NoError(t, Check(seq), "max %d", c.max)
	}

	// the tracking strategies still serve the full span of such a universe
	for _, name := range []string{StrategyNaive, StrategyBitfield, StrategySet} {
		choose, err := ChooserFor(name)
		assert.NoError(t, err)
		full, err := choose(12, 11, 1)
		assert.NoError(t, err, name)
		assert.Len(t, full, 12, name)
		assert.NoError(t, Check(full), name)
	}
}

func TestChoosers_Deterministic(t *testing.T) {
	for _, name := range allStrategies {
		t.Run(name, func(t *testing.T) {
			choose, err := ChooserFor(name)
			assert.NoError(t, err)

			a, err := choose(200, 4999, 77)
			assert.NoError(t, err)
			b, err := choose(200, 4999, 77)
			assert.NoError(t, err)
			assert.Equal(t, a, b, "same seed must reproduce the same selection")

			c, err := choose(200, 4999, 78)
			assert.NoError(t, err)
			assert.NotEqual(t, a, c, "different seeds must not reproduce the same selection")
		})
	}
}

func TestChoosers_ImpossibleRequests(t *testing.T) {
	for _, name := range allStrategies {
		t.Run(name, func(t *testing.T) {
			choose, err := ChooserFor(name)
			assert.NoError(t, err)

			_, err = choose(12, 10, 1)
			assert.ErrorIs(t, err, ErrInvalidRange, "count above universe size")

			_, err = choose(-1, 10, 1)
			assert.ErrorIs(t, err, ErrInvalidRange, "negative count")
		})
	}
}

func TestChoosers_ZeroMax(t *testing.T) {
	// the tracking strategies can serve the one-value universe
	for _, name := range []string{StrategyNaive, StrategyBitfield, StrategySet} {
		choose, err := ChooserFor(name)
		assert.NoError(t, err)
		seq, err := choose(1, 0, 1)
		assert.NoError(t, err, name)
		assert.Equal(t, []uint32{0}, seq, name)
	}

	// the generator needs a range of at least 1
	_, err := ChooseUnique(1, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestChoosers_ZeroCount(t *testing.T) {
	for _, name := range allStrategies {
		choose, err := ChooserFor(name)
		assert.NoError(t, err)
		seq, err := choose(0, 100, 1)
		assert.NoError(t, err, name)
		assert.Empty(t, seq, name)
	}
}

func TestChooserFor_UnknownName(t *testing.T) {
	_, err := ChooserFor("quadratic")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quadratic")
}

func BenchmarkChoosers(b *testing.B) {
	const universe = 100_000
	counts := []int{1_000, 50_000}
	for _, name := range allStrategies {
		for _, count := range counts {
			if name == StrategyNaive && count > 10_000 {
				continue // the quadratic rescan is not worth the wait
			}
			choose, err := ChooserFor(name)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/count=%d", name, count), func(b *testing.B) {
				for range b.N {
					if _, err := choose(count, universe-1, 42); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
