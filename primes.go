package randperm

import (
	"math/bits"

	lru "github.com/hashicorp/golang-lru/v2"
)

// The odd primes up to 251. Together with the evenness check in isPrime this
// covers every prime divisor candidate below the 6k±1 wheel's starting point,
// and the whole table fits into a cache line or two.
var smallPrimes = [...]uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251,
}

// isqrtFloor computes the integer square root of x, rounded down.
// It works digit by digit on pairs of bits, so no intermediate product ever
// exceeds 64 bits even for x close to 2^64-1. Floating-point sqrt loses
// exactness up there and must not be substituted.
func isqrtFloor(x uint64) uint64 {
	if x < 2 {
		return x
	}

	// One result bit per pair of input bits; r starts as the root of the
	// topmost one- or two-bit chunk, which is always 1.
	e := uint((bits.Len64(x)+1)>>1) - 1
	r := uint64(1)
	for e > 0 {
		e--
		cur := x >> (e << 1)
		sm := r << 1
		lg := sm + 1
		if lg*lg <= cur {
			r = lg
		} else {
			r = sm
		}
	}
	return r
}

// isqrtCeil computes the integer square root of x, rounded up.
func isqrtCeil(x uint64) uint64 {
	r := isqrtFloor(x)
	if r*r < x {
		r++
	}
	return r
}

// isPrime reports whether p is prime, for any uint64. Trial division:
// evenness first, then the small-prime table, then a 6k±1 wheel up to
// ceil(sqrt(p)).
func isPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}

	m := isqrtCeil(p)
	for _, q := range smallPrimes {
		d := uint64(q)
		if d > m {
			return true
		}
		if p%d == 0 {
			return false
		}
	}

	// Candidates above the table are of the form 6k-1 or 6k+1.
	// 251 = 6*42-1, so the first pair re-checks 251 and picks up 253.
	for i := uint64(251); i <= m; i += 6 {
		if p%i == 0 || p%(i+2) == 0 {
			return false
		}
	}
	return true
}

// primePredecessor returns the largest prime less than or equal to p,
// or 0 if there is none (p < 2).
//
// The scan walks odd numbers downward and has no iteration cap. Prime gaps
// near any realistic starting point are tiny, but the latency is still the
// one non-constant cost in this package, so callers cache the result.
func primePredecessor(p uint64) uint64 {
	if p < 2 {
		return 0
	}
	if p == 2 {
		return 2
	}
	if p%2 == 0 {
		p--
	}
	for !isPrime(p) {
		p -= 2
	}
	return p
}

type commonUniverse struct {
	universe, prime uint64
}

// Common universe sizes and the largest primes p <= universe with
// p = 3 (mod 4). Hitting this table turns construction into a lookup.
var commonUniverses = [...]commonUniverse{
	{1<<16 - 2, 1<<16 - 17},
	{1<<16 - 1, 1<<16 - 17},
	{1<<24 - 2, 1<<24 - 17},
	{1<<24 - 1, 1<<24 - 17},
	{1<<32 - 2, 1<<32 - 5},
	{1<<32 - 1, 1<<32 - 5},
	{1<<40 - 2, 1<<40 - 213},
	{1<<40 - 1, 1<<40 - 213},
	{1<<48 - 2, 1<<48 - 65},
	{1<<48 - 1, 1<<48 - 65},
	{1<<56 - 2, 1<<56 - 5},
	{1<<56 - 1, 1<<56 - 5},
	{1<<63 - 2, 1<<63 - 25},
	{1<<63 - 1, 1<<63 - 25},
	{1<<64 - 2, 0xFFFFFFFFFFFFFF43},
	{1<<64 - 1, 0xFFFFFFFFFFFFFF43},
}

// primeCache memoizes fallback search results so repeated constructions over
// the same uncommon universe pay the descent only once. The cache is
// thread-safe and purely a latency optimization.
var primeCache, _ = lru.New[uint64, uint64](64)

// prevPrime3Mod4 finds the largest prime p <= universe with p = 3 (mod 4).
// The caller guarantees universe >= 3; the descent then bottoms out at 3 at
// the latest, so the loop always terminates.
func prevPrime3Mod4(universe uint64) uint64 {
	for _, cu := range &commonUniverses {
		if cu.universe == universe {
			return cu.prime
		}
	}

	if p, ok := primeCache.Get(universe); ok {
		return p
	}

	p := primePredecessor(universe)
	for p&3 != 3 {
		p = primePredecessor(p - 1)
	}
	primeCache.Add(universe, p)
	return p
}
