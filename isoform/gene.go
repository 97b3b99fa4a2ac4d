// SPDX-License-Identifier: MIT

package isoform

import "fmt"

// Gene holds the structural metadata of a gene's isoforms.
// Both slices are indexed by isoform and must have equal length K.
type Gene struct {
	// IsoLens are isoform lengths in bases.
	IsoLens []int `yaml:"iso_lens" json:"iso_lens"`

	// PartsPerIsoform are structural segment counts (e.g. exons); an isoform
	// with p parts has p−1 junctions.
	PartsPerIsoform []int `yaml:"parts_per_isoform" json:"parts_per_isoform"`
}

// NumIsoforms returns K.
func (g *Gene) NumIsoforms() int { return len(g.IsoLens) }

// Validate checks shape and positivity of the metadata.
//
// Errors:
//   - ErrInvalidGene for K < 2, K > MaxIsoforms, mismatched slice lengths,
//     non-positive lengths or part counts.
func (g *Gene) Validate() error {
	k := len(g.IsoLens)
	if k < 2 || k > MaxIsoforms {
		return fmt.Errorf("gene: %d isoforms, want 2..%d: %w", k, MaxIsoforms, ErrInvalidGene)
	}
	if len(g.PartsPerIsoform) != k {
		return fmt.Errorf("gene: %d lengths vs %d part counts: %w", k, len(g.PartsPerIsoform), ErrInvalidGene)
	}
	for i := 0; i < k; i++ {
		if g.IsoLens[i] <= 0 {
			return fmt.Errorf("gene: isoform %d length %d: %w", i, g.IsoLens[i], ErrInvalidGene)
		}
		if g.PartsPerIsoform[i] <= 0 {
			return fmt.Errorf("gene: isoform %d parts %d: %w", i, g.PartsPerIsoform[i], ErrInvalidGene)
		}
	}

	return nil
}

// ScaledLen returns isoLen − readLen + 1, the number of start positions of a
// read of length readLen on isoform iso.
func (g *Gene) ScaledLen(iso, readLen int) int {
	return g.IsoLens[iso] - readLen + 1
}
