package bench

import (
	"math"
	"time"
)

const calibrationRounds = 100_000

// resolution caches the measured clock resolution in nanoseconds.
var resolution = int64(-1)

// ClockResolution returns the smallest positive interval the benchmark clock
// can distinguish, in nanoseconds. Should return 100ns on Windows systems,
// and typically between 20ns and 100ns on Linux and macOS systems. The first
// call calibrates; later calls return the cached value.
func ClockResolution() int64 {
	if resolution == int64(-1) {
		resolution = calibrate()
	}
	return resolution
}

func calibrate() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := Now()
		t2 := Now()
		if d := tickDiff(t1, t2); d > 0 && d < minDiff {
			minDiff = d
		}
	}
	return minDiff
}

// Since returns the time elapsed since t as measured by the benchmark clock.
func Since(t Tick) time.Duration {
	return time.Duration(tickDiff(t, Now()))
}
