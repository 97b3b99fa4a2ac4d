// SPDX-License-Identifier: MIT

// Package isoform models reads, isoform structure and the read likelihood
// under a read→isoform assignment.
//
// Building blocks:
//   - Read      — bitmask of isoform compatibility flags (bit i ⇔ isoform i)
//   - Gene      — isoform lengths and parts (exons) per isoform
//   - Policy    — pluggable effective-length / compatibility predicate
//   - Model     — Gene + read length + overhang + Policy, with precomputed tables
//   - Scorer    — per-read, vector and summed log-likelihoods; two
//     interchangeable implementations: Reference (recompute everything) and
//     Fast (table lookups)
//
// Model:
//
//	Under a uniform start-position model a read assigned to isoform j is
//	observed at one of P_j positions, so log P(read | j) = −log P_j when the
//	read is compatible with j and −Inf otherwise. P_j is supplied by the
//	Policy; the default OverhangPolicy removes the start positions whose read
//	would overlap a junction by fewer than overhangLen bases.
//
//	The mixture weights are log_psi_frag = log Ψ + log(scaled_len), renormalized
//	by log-sum-exp, where scaled_len = isoLen − readLen + 1.
//
// Reads are conditionally independent given their assignments, so
// SumLogScoreReads is exactly the left-to-right sum of LogScoreReads.
//
// Models and reads are immutable after construction and safe to share between
// chains without locking.
package isoform
