// Package randperm generates deterministic, seedable pseudo-random
// permutations of the integers in a bounded universe [0, universe).
// Every permuted value is computed on demand from a handful of modular
// arithmetic operations; the full permutation is never materialized, so
// memory is O(1) and each query is O(1).
//
// The construction follows Jeff Preshing's article on generating unique
// random integers from quadratic residues of a prime p = 3 (mod 4)
// (https://preshing.com/20121224/how-to-generate-a-sequence-of-unique-random-integers),
// extended to arbitrary universe sizes up to 2^64-1.
//
// The permutation is statistically well mixed but not cryptographically
// secure.
package randperm

import (
	"errors"
	"math/bits"
)

// Two fixed mixing constants with a decent dispersion of 64 bits. The
// user-supplied seed is XORed with both; generators built from the same
// universe and seed always produce the same sequence.
const (
	shuffle1 = 0x9696594B6A5936B2
	shuffle2 = 0xD2165B4B66592AD6
)

// ErrEmptyUniverse is returned by New when the requested universe is empty.
var ErrEmptyUniverse = errors.New("randperm: universe must be at least 1")

// Permutation is a bijection on [0, universe), fully defined by three
// integers. It is immutable after construction, cheap to copy, and safe for
// concurrent use without locking.
//
// The zero value is the degenerate identity permutation over the
// single-element universe {0}.
type Permutation struct {
	universe uint64 // exclusive upper bound of the permuted domain
	prime    uint64 // largest prime <= universe with prime = 3 (mod 4); 0 below universe 3
	seed     uint64 // user seed mixed with shuffle1/shuffle2, used as additive offset
}

// New returns a permutation of [0, universe). If no seed is given, the
// current high-resolution timestamp is used, so omitting it yields a fresh
// shuffle on every construction.
//
// Construction is the only potentially slow step: on a universe not covered
// by the fast-path table it runs a downward prime search, which is CPU-bound
// and typically finishes within milliseconds. Every query afterwards is
// constant time.
func New(universe uint64, seed ...uint64) (Permutation, error) {
	if universe == 0 {
		return Permutation{}, ErrEmptyUniverse
	}

	s := Timestamp()
	if len(seed) > 0 {
		s = seed[0]
	}

	var prime uint64
	if universe >= 3 {
		prime = prevPrime3Mod4(universe)
	}
	// For universes 1 and 2 no prime = 3 (mod 4) fits below the bound.
	// With prime = 0 the inner step degrades to the identity and the seed
	// offset alone permutes the one or two elements.

	return Permutation{
		universe: universe,
		prime:    prime,
		seed:     (s ^ shuffle1) ^ shuffle2,
	}, nil
}

// Universe returns the exclusive upper bound of the permuted domain.
func (p Permutation) Universe() uint64 {
	if p.universe == 0 {
		return 1
	}
	return p.universe
}

// Permute computes the i-th number of the permutation.
//
// For i < Universe() the results form an exact bijection on [0, Universe()).
// Permute is total: for i >= Universe() it still returns a deterministic
// value, but that value is not part of the bijection.
func (p Permutation) Permute(i uint64) uint64 {
	return p.permute((p.seed + p.permute(i)) % p.Universe())
}

// permute applies one quadratic-residue phase over [0, prime). Values in the
// gap [prime, universe) map to themselves here; the outer seed-offset phase
// shuffles them into the permuted range, keeping the composition a bijection
// on the whole universe.
func (p Permutation) permute(x uint64) uint64 {
	if x >= p.prime {
		return x
	}
	// For a prime = 3 (mod 4), x^2 mod prime together with the reflection
	// prime-r for the upper half is a bijection on [0, prime). The square is
	// reduced through a 128-bit intermediate; x < prime keeps the quotient
	// within 64 bits, so Rem64 cannot trap.
	hi, lo := bits.Mul64(x, x)
	r := bits.Rem64(hi, lo, p.prime)
	if x <= p.prime>>1 {
		return r
	}
	return p.prime - r
}
