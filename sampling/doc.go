// SPDX-License-Identifier: MIT

// Package sampling provides the random primitives consumed by the Psi sampler:
// seeded generator handles, cumulative sums, multinomial and categorical draws,
// Box–Muller standard normals and Cholesky-based multivariate normals.
//
// 🚀 What lives here?
//
//	Every stochastic step of a chain funnels through this package, so the
//	kernels are written for tight inner loops:
//	  • SampleMultinomialInto / SampleCategorical — inverse-CDF draws with no
//	    per-draw allocation; tolerant of vectors that do not sum to one
//	  • CumulativeSum — strict left-to-right running sum (bit-stable)
//	  • StandardNormalBoxMuller — one N(0,1) variate from two uniforms
//	  • MVNormal — factor the covariance once, then draw mu + L·z repeatedly
//
// ✨ Determinism:
//   - No package-level generator. Every draw takes an explicit *rand.Rand.
//   - NewRNG(seed) ⇒ identical streams for identical seeds on every platform.
//   - DeriveSeed/DeriveRNG split a parent seed into independent chain streams.
//
// 🧪 Reference kernels:
//
//	NaiveCumulativeSum, NaiveSampleMultinomial, NaiveCholesky and
//	NaiveSampleMVNormal are straightforward allocating versions used for
//	differential tests and benchmarks. Given the same generator state they
//	return exactly what the optimised kernels return.
//
// Concurrency:
//   - *rand.Rand and *MVNormal are NOT goroutine-safe; give each chain its own.
package sampling
