package uniqseq

// Generator emits integers from [0, Max()] with no repetition within one
// period, in an order that looks random but is fully determined by the range
// and the seed. It needs no memory of past values: for a prime p with
// p % 4 == 3, squaring mod p (folded at p/2) permutes [0, p), so walking an
// index through [0, p) and permuting it twice can never repeat a value
// within a period. Candidates that land between Max() and the prime are
// skipped, which is why the prime is chosen as close to the range as
// possible.
//
// When Max() < Prime(), one period emits every integer in [0, Max()] exactly
// once. When Max() == Prime() (a range bound that is itself a prime
// congruent 3 mod 4, or a capped request), the per-period cover is
// [0, Max()): the bound itself appears at most once per generator, out of a
// seed-mixed start index that lands exactly on the prime, before the first
// full period. Period() reports the cycle length in both regimes.
//
// A Generator is not safe for concurrent use; give each goroutine its own
// instance. Distinct instances are fully independent.
type Generator struct {
	max    uint32
	prime  uint32
	offset uint32
	index  uint32
}

// New returns a Generator for values in [0, max] inclusive. The optional
// seed (default 1) selects one of the possible orderings; the same (max,
// seed) pair always yields the same sequence.
//
// max must be at least 1. Requests above MaxSelectablePrime are narrowed to
// [0, MaxSelectablePrime], the widest span a 32-bit permutation can cover.
// When max lands exactly on a prime congruent 3 mod 4 the sequence period is
// max rather than max+1; see Period.
func New(max uint64, seed ...uint32) (*Generator, error) {
	s := uint32(1)
	if len(seed) > 0 {
		s = seed[0]
	}
	prime, err := SelectPrime(max)
	if err != nil {
		return nil, err
	}
	return newGenerator(max, prime, s), nil
}

// NewWithPrimeSource is New with an injected prime source and a mandatory
// seed.
func NewWithPrimeSource(max uint64, seed uint32, next NextPrimeFunc) (*Generator, error) {
	prime, err := SelectPrimeWith(max, next)
	if err != nil {
		return nil, err
	}
	return newGenerator(max, prime, seed), nil
}

func newGenerator(max uint64, prime, seed uint32) *Generator {
	m := prime
	if max < uint64(prime) {
		m = uint32(max)
	}
	g := &Generator{max: m, prime: prime}
	g.offset = prime - m
	// Mix the seed through the permutation twice so that nearby seeds start
	// far apart. The arithmetic deliberately wraps mod 2^32; start indices at
	// or above the prime pass through the permutation unchanged and are
	// absorbed by the first index advance.
	g.index = g.permute(g.permute(seed) + 2*prime - m)
	return g
}

// permute maps x to its position in the quadratic residue permutation of
// [0, prime). Values at or above the prime map to themselves, keeping the
// function total on uint32 without breaking the bijection.
func (g *Generator) permute(x uint32) uint32 {
	if x >= g.prime {
		return x
	}
	residue := uint32(uint64(x) * uint64(x) % uint64(g.prime))
	if x <= g.prime/2 {
		return residue
	}
	return g.prime - residue
}

// Next returns the next value of the sequence. The permutation guarantees a
// value below the prime; the prime is only slightly above Max(), so the loop
// rarely skips more than a couple of candidates.
func (g *Generator) Next() uint32 {
	for {
		res := g.permute(g.permute(g.index))
		g.index = (g.index + 1) % g.prime
		if res <= g.max {
			return res
		}
	}
}

// Max returns the inclusive upper bound of the output range.
func (g *Generator) Max() uint32 {
	return g.max
}

// Prime returns the permutation modulus backing the sequence.
func (g *Generator) Prime() uint32 {
	return g.prime
}

// Period returns how many values Next emits before the sequence repeats:
// one per index in [0, prime) whose candidate survives the rejection band
// between Max() and the prime.
func (g *Generator) Period() uint32 {
	if g.offset == 0 {
		return g.prime
	}
	return g.prime - g.offset + 1
}
