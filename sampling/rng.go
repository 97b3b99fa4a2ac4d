// SPDX-License-Identifier: MIT

// Package sampling - RNG utilities shared by every chain.
//
// This file centralizes deterministic random generation for the sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: no hidden allocations in hot paths; O(1) helpers.
//
// Concurrency:
//   - math/rand/v2.Rand is NOT goroutine-safe. Do not share a *rand.Rand across chains.
//   - Use DeriveRNG (or DeriveSeed + NewRNG) to create independent per-chain streams.
package sampling

import "math/rand/v2"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// pcgStreamSalt separates the two PCG words so that NewRNG(s) never builds a
// source with seed1==seed2.
const pcgStreamSalt uint64 = 0xda3e39cb94b95bdb

// NewRNG returns a deterministic *rand.Rand backed by a PCG source.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed uint64) *rand.Rand {
	var s uint64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewPCG(s, DeriveSeed(s, pcgStreamSalt)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// We want independent substreams derived from one configured seed (one per
// chain), so a SplitMix64-style avalanche mix is applied to remove correlations
// between neighbouring stream ids.
//
// Complexity: O(1).
func DeriveSeed(parent uint64, stream uint64) uint64 {
	// SplitMix64 finalizer; constants from Vigna 2014.
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// DeriveRNG creates an independent deterministic RNG stream based on a base RNG
// and a stream identifier. If base==nil, defaultRNGSeed is used as the parent.
// Otherwise base.Uint64() is consumed once so that two derivations with the same
// stream id still differ.
//
// Call during setup (not in hot loops).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent uint64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Uint64()
	}
	return NewRNG(DeriveSeed(parent, stream))
}

// uniformPositive returns a uniform variate on (0, 1].
// Used wherever the draw is passed to math.Log.
func uniformPositive(rng *rand.Rand) float64 {
	return 1 - rng.Float64()
}
