package uniqseq

// Rand is a small deterministic pseudo-random number generator based on the
// xorshift* algorithm (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// Its sequence is fully determined by the seed, it has a period of 2^64-1,
// and every draw runs in constant time. It is not cryptographically secure
// and not safe for concurrent use; give each goroutine its own instance.
// The memory footprint is 8 bytes.
type Rand struct {
	state uint64
}

// NewRand returns a generator whose sequence is fully determined by seed.
// Every seed is valid, including zero: the seed is displaced by a fixed odd
// constant so the internal xorshift state never starts at zero.
func NewRand(seed uint64) *Rand {
	s := seed + 0x9E3779B97F4A7C15
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &Rand{state: s}
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a constant runtime and a high probability to be inlined by the compiler.
func (r *Rand) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// Uint32 returns a uniformly distributed uint32, taken from the high half of
// the 64-bit draw where the final multiplication has diffused the most.
func (r *Rand) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Uint32N returns a pseudo-random number in the half-open interval [0,n).
// Even though this function will probably not be inlined by the compiler, it
// has a very efficient implementation avoiding division or modulo operations
// on the fast path. This function compensates for bias.
// For n=0 and n=1, Uint32N returns 0.
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (r *Rand) Uint32N(n uint32) uint32 {
	v := r.Uint32()
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			v = r.Uint32()
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}
