//go:build windows

package bench

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Tick is a point on the benchmark clock. Ticks are not comparable between
// computer restarts or between computers, only between two calls to Now()
// within the same run of a program.
type Tick = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns the performance counter frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// Now samples the benchmark clock at the highest resolution the platform
// offers. time.Now is not used here: the performance counter has a finer
// grain than the system clock on most Windows installations.
func Now() Tick {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// tickDiff returns later minus earlier in nanoseconds. It goes negative if
// the arguments are swapped. The conversion contains one integer division.
func tickDiff(earlier, later Tick) int64 {
	d := later - earlier
	d *= 1_000_000_000 // ns per second
	d /= qpcFrequency
	return d
}
