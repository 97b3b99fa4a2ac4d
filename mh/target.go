// SPDX-License-Identifier: MIT

package mh

import (
	"fmt"

	"github.com/katalvlaran/psimcmc/density"
	"github.com/katalvlaran/psimcmc/isoform"
)

// Target is the unnormalized log posterior of Ψ given the reads and their
// current assignments.
type Target struct {
	scorer isoform.Scorer
	model  *isoform.Model
	reads  []isoform.Read
	alpha  []float64

	lpf []float64
}

// NewTarget binds the scorer, the reads and the Dirichlet prior. A nil alpha
// selects the uniform prior α = (1,…,1). reads is retained, not copied.
//
// Errors:
//   - ErrDimensionMismatch when len(alpha) != K.
//   - ErrNumericDomain for any α_i ≤ 0.
func NewTarget(s isoform.Scorer, reads []isoform.Read, alpha []float64) (*Target, error) {
	m := s.Model()
	k := m.NumIsoforms()
	if alpha == nil {
		alpha = make([]float64, k)
		for i := range alpha {
			alpha[i] = 1
		}
	} else {
		alpha = append([]float64(nil), alpha...)
	}
	if len(alpha) != k {
		return nil, fmt.Errorf("NewTarget: len(alpha)=%d K=%d: %w", len(alpha), k, ErrDimensionMismatch)
	}
	for i, a := range alpha {
		if !(a > 0) {
			return nil, fmt.Errorf("NewTarget: alpha[%d]=%g: %w", i, a, ErrNumericDomain)
		}
	}

	return &Target{
		scorer: s,
		model:  m,
		reads:  reads,
		alpha:  alpha,
		lpf:    make([]float64, k),
	}, nil
}

// Model returns the isoform model the target scores against.
func (t *Target) Model() *isoform.Model { return t.model }

// Reads returns the bound reads.
func (t *Target) Reads() []isoform.Read { return t.reads }

// LogPosterior evaluates
//
//	SumLogScoreReads(reads, a) + SumLogScoreAssignments(a, LogPsiFrag(Ψ)) + log Dir(Ψ; α)
//
// The result is −Inf when some read is assigned to an isoform it cannot come from.
func (t *Target) LogPosterior(psi []float64, assignments []int) (float64, error) {
	reads, err := t.scorer.SumLogScoreReads(t.reads, assignments)
	if err != nil {
		return 0, fmt.Errorf("LogPosterior: %w", err)
	}
	if err = isoform.LogPsiFrag(t.lpf, psi, t.model); err != nil {
		return 0, fmt.Errorf("LogPosterior: %w", err)
	}
	assign, err := isoform.SumLogScoreAssignments(assignments, t.lpf)
	if err != nil {
		return 0, fmt.Errorf("LogPosterior: %w", err)
	}
	prior, err := density.DirichletLogPdf(psi, t.alpha)
	if err != nil {
		return 0, fmt.Errorf("LogPosterior: %w", err)
	}

	return reads + assign + prior, nil
}
