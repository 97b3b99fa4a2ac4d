// SPDX-License-Identifier: MIT

package isoform

import (
	"fmt"
	"math"
)

// Option configures NewModel.
type Option func(*modelOptions)

type modelOptions struct {
	policy Policy
}

// WithPolicy replaces the default OverhangPolicy. Panics on nil.
func WithPolicy(p Policy) Option {
	if p == nil {
		panic("isoform: WithPolicy: nil policy")
	}

	return func(o *modelOptions) { o.policy = p }
}

// Model binds a Gene to a read length, an overhang and a Policy, and caches the
// per-isoform quantities every scorer needs. Immutable after NewModel.
type Model struct {
	gene        Gene
	readLen     int
	overhangLen int
	policy      Policy

	scaledLens    []int
	logScaledLens []float64
	positions     []int
	// logScores[j] = −log positions[j], or −Inf when positions[j] ≤ 0.
	logScores []float64
}

// NewModel validates the metadata and precomputes the per-isoform tables.
//
// Errors:
//   - ErrInvalidGene from Gene.Validate, or for readLen < 1 / overhangLen < 0.
//   - ErrInfeasibleIsoform when some isoform is shorter than readLen.
//
// Complexity: O(K).
func NewModel(g Gene, readLen, overhangLen int, opts ...Option) (*Model, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if readLen < 1 || overhangLen < 0 {
		return nil, fmt.Errorf("NewModel: readLen=%d overhangLen=%d: %w", readLen, overhangLen, ErrInvalidGene)
	}

	o := modelOptions{policy: OverhangPolicy{}}
	for _, opt := range opts {
		opt(&o)
	}

	k := g.NumIsoforms()
	m := &Model{
		gene: Gene{
			IsoLens:         append([]int(nil), g.IsoLens...),
			PartsPerIsoform: append([]int(nil), g.PartsPerIsoform...),
		},
		readLen:       readLen,
		overhangLen:   overhangLen,
		policy:        o.policy,
		scaledLens:    make([]int, k),
		logScaledLens: make([]float64, k),
		positions:     make([]int, k),
		logScores:     make([]float64, k),
	}

	for j := 0; j < k; j++ {
		sl := m.gene.ScaledLen(j, readLen)
		if sl <= 0 {
			return nil, fmt.Errorf("NewModel: isoform %d length %d < read length %d: %w",
				j, m.gene.IsoLens[j], readLen, ErrInfeasibleIsoform)
		}
		m.scaledLens[j] = sl
		m.logScaledLens[j] = math.Log(float64(sl))

		m.positions[j] = m.policy.Positions(&m.gene, j, readLen, overhangLen)
		m.logScores[j] = logScoreFromPositions(m.positions[j])
	}

	return m, nil
}

// NumIsoforms returns K.
func (m *Model) NumIsoforms() int { return len(m.scaledLens) }

// ReadLen returns the read length the model was built for.
func (m *Model) ReadLen() int { return m.readLen }

// OverhangLen returns the minimum junction overhang.
func (m *Model) OverhangLen() int { return m.overhangLen }

// Policy returns the compatibility policy.
func (m *Model) Policy() Policy { return m.policy }

// Gene returns a copy of the gene metadata.
func (m *Model) Gene() Gene {
	return Gene{
		IsoLens:         append([]int(nil), m.gene.IsoLens...),
		PartsPerIsoform: append([]int(nil), m.gene.PartsPerIsoform...),
	}
}

// ScaledLens returns a copy of isoLen − readLen + 1 per isoform.
func (m *Model) ScaledLens() []int { return append([]int(nil), m.scaledLens...) }

// Positions returns a copy of the policy's observable start positions per isoform.
func (m *Model) Positions() []int { return append([]int(nil), m.positions...) }

// Feasible reports whether reads can be assigned to isoform iso at all.
func (m *Model) Feasible(iso int) bool {
	return iso >= 0 && iso < len(m.positions) && m.positions[iso] > 0
}

// Admits reports whether r is compatible with, and feasible on, iso.
func (m *Model) Admits(r Read, iso int) bool {
	return m.Feasible(iso) && m.policy.Compatible(r, iso)
}

func logScoreFromPositions(p int) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}

	return -math.Log(float64(p))
}
