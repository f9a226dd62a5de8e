package bench

import (
	"math"

	"github.com/uniqseq/uniqseq"
)

// minConfidenceSamples is the smallest latency sample count the bootstrap
// will touch. Below that, resampling medians says nothing.
const minConfidenceSamples = 11

// SpeedupConfidence estimates, for each margin, the probability that the
// strategy behind the fast samples beats the strategy behind the slow
// samples by at least that relative margin (0.05 means 5% faster). It runs
// reps bootstrap replicates: each replicate resamples both latency vectors
// with replacement, takes their medians and evaluates
//
//	delta = 1 - median(fast)/median(slow)
//
// and the returned confidence is the fraction of replicates with
// delta >= margin. The whole computation is determined by seed.
//
// If reps is zero or either sample is shorter than minConfidenceSamples,
// every margin maps to NaN.
func SpeedupConfidence(fast, slow []float64, margins []float64, reps int, seed uint64) map[float64]float64 {
	conf := make(map[float64]float64, len(margins))
	if reps <= 0 || len(fast) < minConfidenceSamples || len(slow) < minConfidenceSamples {
		for _, m := range margins {
			conf[m] = math.NaN()
		}
		return conf
	}

	rng := uniqseq.NewRand(seed)
	counts := make(map[float64]int, len(margins))
	scratchFast := make([]float64, len(fast))
	scratchSlow := make([]float64, len(slow))

	for range reps {
		resample(scratchFast, fast, rng)
		resample(scratchSlow, slow, rng)
		delta := relativeSpeedup(quickMedian(scratchFast, rng), quickMedian(scratchSlow, rng))
		for _, m := range margins {
			if delta >= m {
				counts[m]++
			}
		}
	}

	for _, m := range margins {
		conf[m] = float64(counts[m]) / float64(reps)
	}
	return conf
}

// resample fills dst with a bootstrap sample (drawn with replacement) of src.
func resample(dst, src []float64, rng *uniqseq.Rand) {
	n := uint32(len(src))
	for i := range dst {
		dst[i] = src[rng.Uint32N(n)]
	}
}

// relativeSpeedup returns 1 - fast/slow, guarded so that NaN, zero and
// infinite medians cannot poison the replicate count: equal medians count as
// no difference, and a near-zero denominator is lifted to a scale-aware
// epsilon.
func relativeSpeedup(fast, slow float64) float64 {
	switch {
	case math.IsNaN(fast) || math.IsNaN(slow):
		return math.NaN()
	case fast == slow:
		return 0
	}
	eps := math.Max(math.Abs(slow)*1e-12, math.SmallestNonzeroFloat64)
	denom := slow
	if math.Abs(slow) < eps {
		denom = eps
	}
	return 1 - fast/denom
}

// quickMedian returns the median of xs in expected O(n) time, reordering xs
// in place. With an even number of elements it returns the higher of the two
// middle ones. An empty slice yields NaN.
func quickMedian(xs []float64, rng *uniqseq.Rand) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return quickselect(xs, uint64(len(xs)/2), rng)
}

// quickselect finds the k-th smallest element (0-based) in expected O(n)
// time, partitioning around rng-chosen pivots.
// See https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k uint64, rng *uniqseq.Rand) float64 {
	low, high := uint64(0), uint64(len(xs)-1)
	for low <= high {
		pivot := uint64(rng.Uint32N(uint32(high-low+1))) + low
		xs[pivot], xs[high] = xs[high], xs[pivot] // move pivot to the end
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// partition rearranges xs around the pivot at xs[high] and returns the
// pivot's final index.
func partition(xs []float64, low, high uint64) uint64 {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}
