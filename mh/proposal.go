// SPDX-License-Identifier: MIT

package mh

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/psimcmc/density"
	"github.com/katalvlaran/psimcmc/sampling"
)

// Proposal is the logistic-normal random walk on the K-simplex.
// It owns scratch buffers and must not be shared between chains.
type Proposal struct {
	k        int
	variance float64
	eps      float64
	mvn      *sampling.MVNormal

	theta    []float64
	thetaNew []float64
	mu       []float64
}

// NewProposal factors the (K−1)×(K−1) covariance variance·I once.
//
// Errors:
//   - ErrDimensionMismatch for numIsoforms < 2.
//   - ErrNumericDomain for variance ≤ 0 or eps outside [0, 1/K).
func NewProposal(numIsoforms int, variance, eps float64) (*Proposal, error) {
	if numIsoforms < 2 {
		return nil, fmt.Errorf("NewProposal: K=%d: %w", numIsoforms, ErrDimensionMismatch)
	}
	if !(variance > 0) {
		return nil, fmt.Errorf("NewProposal: variance=%g: %w", variance, ErrNumericDomain)
	}
	if !(eps >= 0) || eps*float64(numIsoforms) >= 1 {
		return nil, fmt.Errorf("NewProposal: eps=%g: %w", eps, ErrNumericDomain)
	}

	d := numIsoforms - 1
	variances := make([]float64, d)
	for i := range variances {
		variances[i] = variance
	}
	mvn, err := sampling.NewMVNormalDiag(variances)
	if err != nil {
		return nil, fmt.Errorf("NewProposal: %w", err)
	}

	return &Proposal{
		k:        numIsoforms,
		variance: variance,
		eps:      eps,
		mvn:      mvn,
		theta:    make([]float64, d),
		thetaNew: make([]float64, d),
		mu:       make([]float64, d),
	}, nil
}

// NumIsoforms returns K.
func (p *Proposal) NumIsoforms() int { return p.k }

// Variance returns the per-coordinate proposal variance σ².
func (p *Proposal) Variance() float64 { return p.variance }

// Propose draws Ψ' around psi and writes it into dst (allocated when nil).
// dst must not alias psi. Consumes 2·(K−1) uniforms.
//
// Errors:
//   - ErrDimensionMismatch when len(psi) != K or len(dst) not in {0, K}.
//   - ErrNumericDomain when psi leaves the open simplex or clamping collapses.
func (p *Proposal) Propose(dst, psi []float64, rng *rand.Rand) ([]float64, error) {
	if len(psi) != p.k {
		return nil, fmt.Errorf("Propose: len(psi)=%d K=%d: %w", len(psi), p.k, ErrDimensionMismatch)
	}
	if dst == nil {
		dst = make([]float64, p.k)
	}
	if len(dst) != p.k {
		return nil, fmt.Errorf("Propose: len(dst)=%d K=%d: %w", len(dst), p.k, ErrDimensionMismatch)
	}

	if err := density.Logit(p.theta, psi); err != nil {
		return nil, fmt.Errorf("Propose: %w", err)
	}
	if err := p.mvn.SampleInto(p.thetaNew, p.theta, rng); err != nil {
		return nil, fmt.Errorf("Propose: %w", err)
	}
	if err := density.InvLogit(dst, p.thetaNew); err != nil {
		return nil, fmt.Errorf("Propose: %w", err)
	}
	if err := density.ClampSimplex(dst, dst, p.eps); err != nil {
		return nil, fmt.Errorf("Propose: %w", err)
	}

	return dst, nil
}

// LogDensity returns log q(to | from): the logistic-normal density centred at
// logit(from), evaluated at the full vector to. to[K−1] is used as stored, so a
// coordinate floored at eps by Propose stays in the domain for any eps > 0.
func (p *Proposal) LogDensity(to, from []float64) (float64, error) {
	if len(to) != p.k || len(from) != p.k {
		return 0, fmt.Errorf("LogDensity: len(to)=%d len(from)=%d K=%d: %w", len(to), len(from), p.k, ErrDimensionMismatch)
	}
	if err := density.Logit(p.mu, from); err != nil {
		return 0, fmt.Errorf("LogDensity: %w", err)
	}

	return density.LogisticNormalLogPdfSimplex(to, p.mu, p.variance)
}

// LogCorrection returns log q(current | proposed) − log q(proposed | current).
// It is exactly 0 when proposed equals current.
func (p *Proposal) LogCorrection(current, proposed []float64) (float64, error) {
	back, err := p.LogDensity(current, proposed)
	if err != nil {
		return 0, fmt.Errorf("LogCorrection: backward: %w", err)
	}
	fwd, err := p.LogDensity(proposed, current)
	if err != nil {
		return 0, fmt.Errorf("LogCorrection: forward: %w", err)
	}

	return back - fwd, nil
}
