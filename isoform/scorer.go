// SPDX-License-Identifier: MIT

package isoform

import (
	"fmt"
	"math"
)

// Scorer evaluates the read likelihood under an assignment.
//
// Contract shared by every implementation:
//   - LogScoreRead returns −Inf when the read is incompatible with iso, when iso
//     is infeasible for the model, or when iso ∉ [0, K); otherwise −log P_iso.
//   - LogScoreReads[n] == LogScoreRead(reads[n], assignments[n]) exactly.
//   - SumLogScoreReads == left-to-right Σ of LogScoreReads exactly.
//   - Vector forms reject len(reads) != len(assignments) (ErrDimensionMismatch)
//     and assignments ∉ [0, K) (ErrIsoformOutOfRange).
type Scorer interface {
	// Model returns the model the scorer evaluates.
	Model() *Model

	// LogScoreRead scores a single read under a single assignment.
	LogScoreRead(r Read, iso int) float64

	// LogScoreReads writes per-read scores into dst (reallocated when too
	// small) and returns it.
	LogScoreReads(dst []float64, reads []Read, assignments []int) ([]float64, error)

	// SumLogScoreReads returns the total log-likelihood of the assignment.
	SumLogScoreReads(reads []Read, assignments []int) (float64, error)
}

// Scorer kinds accepted by NewScorer.
const (
	ScorerFast      = "fast"
	ScorerReference = "reference"
)

// NewScorer returns the implementation named by kind ("" selects Fast).
func NewScorer(kind string, m *Model) (Scorer, error) {
	switch kind {
	case "", ScorerFast:
		return NewFast(m), nil
	case ScorerReference:
		return NewReference(m), nil
	default:
		return nil, fmt.Errorf("isoform: unknown scorer kind %q", kind)
	}
}

// Fast answers every query from the Model's precomputed −log P_j table.
// The per-read cost is one compatibility test and one table load.
type Fast struct {
	m         *Model
	logScores []float64
}

// NewFast builds a table-driven scorer over m.
func NewFast(m *Model) *Fast {
	return &Fast{m: m, logScores: m.logScores}
}

// Model implements Scorer.
func (f *Fast) Model() *Model { return f.m }

// LogScoreRead implements Scorer.
func (f *Fast) LogScoreRead(r Read, iso int) float64 {
	if iso < 0 || iso >= len(f.logScores) || !f.m.policy.Compatible(r, iso) {
		return math.Inf(-1)
	}

	return f.logScores[iso]
}

// LogScoreReads implements Scorer.
func (f *Fast) LogScoreReads(dst []float64, reads []Read, assignments []int) ([]float64, error) {
	if err := checkAssignments(reads, assignments, len(f.logScores)); err != nil {
		return nil, err
	}
	dst = reuse(dst, len(reads))
	for n, r := range reads {
		dst[n] = f.LogScoreRead(r, assignments[n])
	}

	return dst, nil
}

// SumLogScoreReads implements Scorer.
func (f *Fast) SumLogScoreReads(reads []Read, assignments []int) (float64, error) {
	if err := checkAssignments(reads, assignments, len(f.logScores)); err != nil {
		return 0, err
	}

	var total float64
	for n, r := range reads {
		total += f.LogScoreRead(r, assignments[n])
	}

	return total, nil
}

// checkAssignments validates lengths and index ranges once per vector call so
// the inner loops stay branch-light.
func checkAssignments(reads []Read, assignments []int, k int) error {
	if len(reads) != len(assignments) {
		return fmt.Errorf("%d reads vs %d assignments: %w", len(reads), len(assignments), ErrDimensionMismatch)
	}
	for n, a := range assignments {
		if a < 0 || a >= k {
			return fmt.Errorf("read %d assigned to isoform %d (K=%d): %w", n, a, k, ErrIsoformOutOfRange)
		}
	}

	return nil
}

func reuse(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}

	return dst[:n]
}
