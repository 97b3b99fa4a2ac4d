// SPDX-License-Identifier: MIT

package isoform

import "math"

// Reference recomputes the effective length and its logarithm from the gene
// metadata on every call. It is the oracle the Fast scorer is tested against.
type Reference struct {
	m *Model
}

// NewReference builds a recomputing scorer over m.
func NewReference(m *Model) *Reference { return &Reference{m: m} }

// Model implements Scorer.
func (s *Reference) Model() *Model { return s.m }

// LogScoreRead implements Scorer.
func (s *Reference) LogScoreRead(r Read, iso int) float64 {
	return LogScoreRead(s.m, r, iso)
}

// LogScoreReads implements Scorer.
func (s *Reference) LogScoreReads(dst []float64, reads []Read, assignments []int) ([]float64, error) {
	if err := checkAssignments(reads, assignments, s.m.NumIsoforms()); err != nil {
		return nil, err
	}
	out := make([]float64, len(reads))
	for n := range reads {
		out[n] = LogScoreRead(s.m, reads[n], assignments[n])
	}
	if cap(dst) >= len(out) {
		dst = dst[:len(out)]
		copy(dst, out)
		return dst, nil
	}

	return out, nil
}

// SumLogScoreReads implements Scorer by summing the vector form.
func (s *Reference) SumLogScoreReads(reads []Read, assignments []int) (float64, error) {
	scores, err := s.LogScoreReads(nil, reads, assignments)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, v := range scores {
		total += v
	}

	return total, nil
}

// LogScoreRead scores one read from first principles:
//
//	−Inf                      if iso ∉ [0,K) or the policy rejects (r, iso)
//	−Inf                      if the policy leaves no start position on iso
//	−log positions(iso)       otherwise
func LogScoreRead(m *Model, r Read, iso int) float64 {
	if iso < 0 || iso >= m.NumIsoforms() || !m.policy.Compatible(r, iso) {
		return math.Inf(-1)
	}
	p := m.policy.Positions(&m.gene, iso, m.readLen, m.overhangLen)
	if p <= 0 {
		return math.Inf(-1)
	}

	return -math.Log(float64(p))
}
