// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/katalvlaran/psimcmc/density"
	"github.com/katalvlaran/psimcmc/gibbs"
	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/mh"
	"github.com/katalvlaran/psimcmc/sampling"
)

// Chain is one Gibbs + MH sampler over a fixed read set.
// Not safe for concurrent use; Run may be called once.
type Chain struct {
	id     string
	cfg    Config
	reads  []isoform.Read
	model  *isoform.Model
	psi0   []float64
	rng    *rand.Rand
	logger *slog.Logger
	metric *Metrics

	gibbs   *gibbs.Sampler
	stepper *mh.Stepper
}

// New validates cfg, builds the model for gene and wires the samplers.
// reads is retained and must not be modified while the chain runs.
//
// Errors:
//   - ErrInvalidConfig for a config that fails validation, an unknown policy,
//     or PriorAlpha / InitialPsi of the wrong length.
//   - isoform.ErrInvalidGene, isoform.ErrInfeasibleIsoform from the model.
func New(reads []isoform.Read, gene isoform.Gene, cfg Config, opts ...Option) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.rng == nil {
		o.rng = sampling.NewRNG(cfg.Seed)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	policy, ok := isoform.PolicyByName(cfg.Policy)
	if !ok {
		return nil, fmt.Errorf("chain.New: policy %q: %w", cfg.Policy, ErrInvalidConfig)
	}
	model, err := isoform.NewModel(gene, cfg.ReadLen, cfg.OverhangLen, isoform.WithPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}
	k := model.NumIsoforms()

	psi0, err := initialPsi(cfg.InitialPsi, k, cfg.ClampEpsilon)
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}
	var alpha []float64
	if len(cfg.PriorAlpha) > 0 {
		if len(cfg.PriorAlpha) != k {
			return nil, fmt.Errorf("chain.New: %d prior_alpha values for %d isoforms: %w", len(cfg.PriorAlpha), k, ErrInvalidConfig)
		}
		alpha = cfg.PriorAlpha
	}

	scorer, err := isoform.NewScorer(cfg.Scorer, model)
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w: %v", ErrInvalidConfig, err)
	}
	target, err := mh.NewTarget(scorer, reads, alpha)
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}
	proposal, err := mh.NewProposal(k, cfg.ProposalVariance, cfg.ClampEpsilon)
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}
	stepper, err := mh.NewStepper(target, proposal)
	if err != nil {
		return nil, fmt.Errorf("chain.New: %w", err)
	}

	return &Chain{
		id:      o.id,
		cfg:     cfg,
		reads:   reads,
		model:   model,
		psi0:    psi0,
		rng:     o.rng,
		logger:  o.logger.With(slog.String("chain", o.id)),
		metric:  o.metrics,
		gibbs:   gibbs.New(scorer),
		stepper: stepper,
	}, nil
}

// ID returns the chain identifier.
func (c *Chain) ID() string { return c.id }

// Model returns the isoform model the chain was built with.
func (c *Chain) Model() *isoform.Model { return c.model }

// Run executes cfg.Iterations iterations and returns the recorded trace.
//
// Implementation:
//   - Stage 1: draw the initial assignments and Ψ state.
//   - Stage 2: per iteration, Gibbs sweep then MH step.
//   - Stage 3: record the state after burn-in every Thinning iterations.
//
// On cancellation the partial trace is returned with ctx.Err(). A failing
// iteration returns the partial trace and an *IterationError.
func (c *Chain) Run(ctx context.Context) (*Trace, error) {
	k := c.model.NumIsoforms()
	trace := &Trace{
		ChainID:     c.id,
		Seed:        c.cfg.Seed,
		NumIsoforms: k,
		Samples:     make([]Sample, 0, c.expectedSamples()),
	}
	c.logger.Info("chain started",
		slog.Int("reads", len(c.reads)),
		slog.Int("isoforms", k),
		slog.Int("iterations", c.cfg.Iterations),
		slog.Int("burn_in", c.cfg.BurnIn),
		slog.Int("thinning", c.cfg.Thinning),
	)

	// Stage 1
	assignments, err := c.gibbs.Init(nil, c.reads, c.rng)
	if err != nil {
		return trace, c.failure(0, StepInit, err)
	}
	state, err := mh.NewState(c.psi0, assignments, c.model)
	if err != nil {
		return trace, c.failure(0, StepInit, err)
	}

	var (
		it       int
		accepted bool
		counts   []int
	)
	for it = 0; it < c.cfg.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			c.logger.Warn("chain cancelled", slog.Int("iteration", it), slog.Any("err", err))
			return trace, err
		}

		// Stage 2
		if err = c.gibbs.Sweep(state.Assignments, c.reads, state.LogPsiFrag, c.rng); err != nil {
			return trace, c.failure(it, StepGibbs, err)
		}
		if accepted, err = c.stepper.Step(state, c.rng); err != nil {
			return trace, c.failure(it, StepMH, err)
		}
		trace.Proposals++
		if accepted {
			trace.Accepted++
		}
		if c.metric != nil {
			c.metric.observe(c.id, state.Psi, accepted)
		}

		// Stage 3
		if it < c.cfg.BurnIn || (it-c.cfg.BurnIn)%c.cfg.Thinning != 0 {
			continue
		}
		if counts, err = isoform.Counts(nil, state.Assignments, k); err != nil {
			return trace, c.failure(it, StepGibbs, err)
		}
		s := Sample{
			Iteration:    it,
			Psi:          append([]float64(nil), state.Psi...),
			Counts:       counts,
			LogPosterior: state.LogPosterior,
			Accepted:     accepted,
		}
		if c.cfg.KeepAssignments {
			s.Assignments = append([]int(nil), state.Assignments...)
		}
		trace.Samples = append(trace.Samples, s)

		c.logger.Debug("sample recorded",
			slog.Int("iteration", it),
			slog.Any("psi", s.Psi),
			slog.Float64("log_posterior", s.LogPosterior),
		)
	}

	c.logger.Info("chain finished",
		slog.Int("samples", len(trace.Samples)),
		slog.Float64("acceptance_rate", trace.AcceptanceRate()),
	)

	return trace, nil
}

func (c *Chain) expectedSamples() int {
	post := c.cfg.Iterations - c.cfg.BurnIn
	if post <= 0 {
		return 0
	}

	return (post + c.cfg.Thinning - 1) / c.cfg.Thinning
}

func (c *Chain) failure(it int, step string, err error) error {
	c.logger.Error("chain aborted",
		slog.Int("iteration", it),
		slog.String("step", step),
		slog.Any("err", err),
	)
	if c.metric != nil {
		c.metric.fail(c.id, step)
	}

	return &IterationError{ChainID: c.id, Iteration: it, Step: step, Err: err}
}

// initialPsi returns a strictly positive simplex point of length k: uniform
// when psi is empty, otherwise psi renormalized and floored at eps.
func initialPsi(psi []float64, k int, eps float64) ([]float64, error) {
	out := make([]float64, k)
	if len(psi) == 0 {
		for i := range out {
			out[i] = 1 / float64(k)
		}
		return out, nil
	}
	if len(psi) != k {
		return nil, fmt.Errorf("%d initial_psi values for %d isoforms: %w", len(psi), k, ErrInvalidConfig)
	}
	if err := density.ClampSimplex(out, psi, eps); err != nil {
		return nil, fmt.Errorf("initial_psi: %w: %v", ErrInvalidConfig, err)
	}

	return out, nil
}
