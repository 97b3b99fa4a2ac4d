// SPDX-License-Identifier: MIT

package mh

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/psimcmc/isoform"
)

// State is the part of a chain the MH step reads and replaces.
type State struct {
	Psi         []float64
	LogPsiFrag  []float64
	Assignments []int
	// LogPosterior is the target at Psi under Assignments after the last Step.
	LogPosterior float64
}

// NewState copies psi and computes its log_psi_frag. Assignments is retained.
func NewState(psi []float64, assignments []int, m *isoform.Model) (*State, error) {
	st := &State{
		Psi:          append([]float64(nil), psi...),
		LogPsiFrag:   make([]float64, m.NumIsoforms()),
		Assignments:  assignments,
		LogPosterior: math.Inf(-1),
	}
	if err := isoform.LogPsiFrag(st.LogPsiFrag, st.Psi, m); err != nil {
		return nil, fmt.Errorf("NewState: %w", err)
	}

	return st, nil
}

// LogAcceptanceRatio returns
//
//	log π(proposed) − log π(current) + log q(current|proposed) − log q(proposed|current)
//
// Errors:
//   - ErrNumericDomain when the ratio is NaN (both targets −Inf).
func LogAcceptanceRatio(t *Target, p *Proposal, current, proposed []float64, assignments []int) (float64, error) {
	ratio, _, _, err := logAcceptance(t, p, current, proposed, assignments)

	return ratio, err
}

// logAcceptance also returns both targets so Step can keep the retained one.
func logAcceptance(t *Target, p *Proposal, current, proposed []float64, assignments []int) (ratio, cur, prop float64, err error) {
	if cur, err = t.LogPosterior(current, assignments); err != nil {
		return 0, 0, 0, err
	}
	if prop, err = t.LogPosterior(proposed, assignments); err != nil {
		return 0, 0, 0, err
	}
	corr, err := p.LogCorrection(current, proposed)
	if err != nil {
		return 0, 0, 0, err
	}

	ratio = prop - cur + corr
	if math.IsNaN(ratio) {
		return 0, 0, 0, fmt.Errorf("log acceptance: π(cur)=%g π(prop)=%g: %w", cur, prop, ErrNumericDomain)
	}

	return ratio, cur, prop, nil
}

// AcceptanceProbability returns min(1, exp(logRatio)); NaN maps to 0.
func AcceptanceProbability(logRatio float64) float64 {
	if math.IsNaN(logRatio) {
		return 0
	}
	if logRatio >= 0 {
		return 1
	}

	return math.Exp(logRatio)
}

// Stepper runs MH updates for one chain.
type Stepper struct {
	target   *Target
	proposal *Proposal
	proposed []float64
}

// NewStepper pairs a target with a proposal of the same dimension.
func NewStepper(t *Target, p *Proposal) (*Stepper, error) {
	if t.model.NumIsoforms() != p.k {
		return nil, fmt.Errorf("NewStepper: target K=%d proposal K=%d: %w", t.model.NumIsoforms(), p.k, ErrDimensionMismatch)
	}

	return &Stepper{target: t, proposal: p, proposed: make([]float64, p.k)}, nil
}

// Step performs one Metropolis–Hastings update of st.Psi.
//
// Implementation:
//   - Stage 1: draw Ψ' from the proposal.
//   - Stage 2: evaluate log r with both targets and the correction.
//   - Stage 3: draw u ~ U[0,1) unconditionally; accept iff u < min(1, e^{log r}).
//   - Stage 4: on accept copy Ψ' into st.Psi and refresh st.LogPsiFrag.
//
// st.LogPosterior is left at the target of the retained Ψ.
func (s *Stepper) Step(st *State, rng *rand.Rand) (bool, error) {
	// Stage 1
	if _, err := s.proposal.Propose(s.proposed, st.Psi, rng); err != nil {
		return false, err
	}

	// Stage 2
	logRatio, cur, prop, err := logAcceptance(s.target, s.proposal, st.Psi, s.proposed, st.Assignments)
	if err != nil {
		return false, err
	}

	// Stage 3
	u := rng.Float64()
	if !(u < AcceptanceProbability(logRatio)) {
		st.LogPosterior = cur
		return false, nil
	}

	// Stage 4
	copy(st.Psi, s.proposed)
	if err = isoform.LogPsiFrag(st.LogPsiFrag, st.Psi, s.target.model); err != nil {
		return false, err
	}
	st.LogPosterior = prop

	return true, nil
}
