// SPDX-License-Identifier: MIT

// Package gibbs resamples the read→isoform assignment vector given Ψ.
//
// Given log_psi_frag and the read scores, reads are conditionally independent,
// so one sweep draws every read from its full conditional
//
//	P(a_n = j | Ψ, r_n) ∝ exp(log_psi_frag[j] + logScoreRead(r_n, j))
//
// restricted to the isoforms the model admits for r_n. Weights are shifted by
// their maximum before exponentiation and the draw goes through
// sampling.SampleCategorical, one uniform per read. Reads with a single
// admissible isoform take the same path and land on it with probability 1.
//
// A Sampler owns its scratch buffers and is not safe for concurrent use; give
// every chain its own.
package gibbs
