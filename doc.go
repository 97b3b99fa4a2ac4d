// Package psimcmc estimates relative isoform abundance (Ψ) from short-read
// data with a Gibbs + Metropolis–Hastings sampler.
//
// Every read carries a compatibility vector over the isoforms of a gene
// (for a skipped exon: inclusion-only, exclusion-only or shared). One chain
// iteration
//
//	1. resamples which isoform each read came from, given Ψ      (gibbs)
//	2. proposes a new Ψ on the logistic-normal scale and accepts
//	   or rejects it given the assignments                        (mh)
//
// Packages, leaves first:
//
//	sampling/ — seeded RNG handles, cumulative sums, multinomial & categorical
//	            draws, Box–Muller normals, Cholesky multivariate normals,
//	            plus naive reference kernels
//	density/  — Dirichlet and logistic-normal log-densities, logit transforms,
//	            simplex clamping, gonum-backed reference densities
//	isoform/  — Read, Gene, compatibility Policy, Model, Fast/Reference scorers,
//	            log_psi_frag and assignment scores
//	gibbs/    — assignment initialization and sweeps
//	mh/       — proposal, target, acceptance ratio and Step
//	chain/    — Config (YAML + validation), Run with burn-in and thinning,
//	            Trace summaries, Prometheus metrics, parallel chains
//
// Quick start:
//
//	cfg := chain.DefaultConfig()
//	cfg.ReadLen, cfg.OverhangLen = 40, 4
//	c, _ := chain.New(reads, gene, cfg)
//	trace, _ := c.Run(ctx)
//	summary, _ := trace.Summary()
//
// Same seed, same trace: every random draw goes through an explicitly passed
// *rand.Rand and consumes a fixed number of uniforms.
//
//	go get github.com/katalvlaran/psimcmc
package psimcmc
