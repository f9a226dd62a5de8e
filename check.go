package uniqseq

import (
	"fmt"
	"math"

	set3 "github.com/TomTonic/Set3"
)

// DuplicateError reports a repeated value in a sequence and the two earliest
// positions it occupies.
type DuplicateError struct {
	I, J  int // I < J
	Value uint32
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value %d at positions %d and %d", e.Value, e.I, e.J)
}

// Check returns nil if seq contains no repeated value, and a *DuplicateError
// describing the first repetition otherwise. The scan for the earlier
// position only runs on the failure path, so the happy path stays linear.
func Check(seq []uint32) error {
	capacity := uint64(len(seq)) * 7 / 5
	if capacity > math.MaxUint32 {
		capacity = math.MaxUint32
	}
	seen := set3.EmptyWithCapacity[uint32](uint32(capacity))
	for j, v := range seq {
		if !seen.Contains(v) {
			seen.Add(v)
			continue
		}
		for i := 0; i < j; i++ {
			if seq[i] == v {
				return &DuplicateError{I: i, J: j, Value: v}
			}
		}
	}
	return nil
}
