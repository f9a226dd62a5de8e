//go:build !windows

package bench

import "time"

// Tick is a point on the benchmark clock. Ticks are not comparable between
// computer restarts or between computers, only between two calls to Now()
// within the same run of a program.
type Tick = time.Time

// Now samples the benchmark clock at the highest resolution the platform
// offers.
func Now() Tick {
	return time.Now()
}

// tickDiff returns later minus earlier in nanoseconds. It goes negative if
// the arguments are swapped.
func tickDiff(earlier, later Tick) int64 {
	return later.Sub(earlier).Nanoseconds()
}
