package uniqseq

import (
	"errors"
	"fmt"

	"github.com/cznic/mathutil"
)

// MaxSelectablePrime is the largest prime that fits in 32 bits (2^32 - 5).
// It is congruent 3 mod 4, so it is also the largest prime this package can
// ever pick as a permutation modulus.
const MaxSelectablePrime uint32 = 4294967291

// ErrInvalidRange reports a range request the generator cannot serve.
var ErrInvalidRange = errors.New("invalid range")

// NextPrimeFunc returns the smallest prime strictly greater than n, with
// ok=false if no such prime fits in a uint32. mathutil.NextPrime is the
// default implementation; tests substitute table-backed or failing sources.
type NextPrimeFunc func(n uint32) (p uint32, ok bool)

// SelectPrime returns the smallest prime p >= max with p % 4 == 3. In that
// residue class every quadratic residue has exactly one square root in each
// half of [0, p), which is what makes the folded squaring map a permutation.
// Requests above MaxSelectablePrime saturate to MaxSelectablePrime. max must
// be at least 1.
func SelectPrime(max uint64) (uint32, error) {
	return SelectPrimeWith(max, mathutil.NextPrime)
}

// SelectPrimeWith is SelectPrime with an injected prime source.
func SelectPrimeWith(max uint64, next NextPrimeFunc) (uint32, error) {
	if max == 0 {
		return 0, fmt.Errorf("select prime: %w: range must be at least 1", ErrInvalidRange)
	}
	if max > uint64(MaxSelectablePrime) {
		return MaxSelectablePrime, nil
	}
	p, ok := next(uint32(max) - 1)
	for ok && p%4 != 3 {
		p, ok = next(p)
	}
	if !ok {
		return 0, fmt.Errorf("select prime: %w: no suitable prime above %d", ErrInvalidRange, max)
	}
	return p, nil
}
