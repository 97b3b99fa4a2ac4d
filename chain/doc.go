// SPDX-License-Identifier: MIT

// Package chain runs the Gibbs + Metropolis–Hastings sampler for isoform
// abundances end to end.
//
// One iteration is
//
//	1. gibbs.Sweep    resample every read's isoform given Ψ
//	2. mh.Stepper.Step propose Ψ', accept or reject given the assignments
//
// Iterations before Config.BurnIn are discarded; afterwards every
// Config.Thinning-th state is recorded in the Trace. The context is checked
// between iterations only, so an iteration is never left half-applied.
//
// A Chain owns its RNG, assignment vector and Ψ and is single-threaded.
// RunChains runs independent chains in parallel, each seeded with
// sampling.DeriveSeed(cfg.Seed, i), sharing the read-only reads and model.
//
// Collaborators are injected with functional options:
//
//	WithLogger(*slog.Logger)  default slog.Default()
//	WithMetrics(*Metrics)     Prometheus collectors, default none
//	WithRNG(*rand.Rand)       default sampling.NewRNG(cfg.Seed)
//	WithID(string)            default a random UUID
package chain
