// SPDX-License-Identifier: MIT

// Package mh implements the Metropolis–Hastings update of the isoform
// abundance vector Ψ given the current read assignments.
//
// Proposal:
//
//	θ  = logit(Ψ)               additive-logistic, last isoform as reference
//	θ' = θ + L·z,   z ~ N(0, I)  L = chol(σ²·I), factored once
//	Ψ' = clamp(invlogit(θ'))     components floored at eps, renormalized
//
// Target (up to a constant):
//
//	log π(Ψ | a, reads) = Σ logScoreRead(r_n, a_n)
//	                    + Σ log_psi_frag(Ψ)[a_n]
//	                    + log Dirichlet(Ψ; α)
//
// Acceptance:
//
//	log r = log π(Ψ') − log π(Ψ) + log q(Ψ | Ψ') − log q(Ψ' | Ψ)
//	P(accept) = min(1, exp(log r))
//
// where q is the logistic-normal density of the proposal, Jacobian included.
// Every Step consumes exactly one uniform for the accept draw, so the RNG
// stream advances identically whether or not the proposal is accepted.
package mh
