// SPDX-License-Identifier: MIT

package sampling

import (
	"math"
	"math/rand/v2"
)

// StandardNormalBoxMuller returns one N(0,1) variate using the Box–Muller
// transform of two uniforms:
//
//	z = sqrt(-2·ln u1) · cos(2π·u2),  u1 ∈ (0,1], u2 ∈ [0,1)
//
// The sine partner is discarded: every call consumes exactly two uniforms.
//
// Only the statistical contract holds (mean 0, sd 1); values are not meant to
// match any other library's normal generator bit-for-bit.
func StandardNormalBoxMuller(rng *rand.Rand) float64 {
	u1 := uniformPositive(rng)
	u2 := rng.Float64()

	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// FillStandardNormal overwrites dst with independent Box–Muller variates.
func FillStandardNormal(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = StandardNormalBoxMuller(rng)
	}
}
