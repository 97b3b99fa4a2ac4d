// SPDX-License-Identifier: MIT

package isoform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/psimcmc/density"
)

// LogPsiFrag writes the fragment-level log mixture weights into dst:
//
//	w_j = log ψ_j + log scaled_len_j
//	dst_j = w_j − logsumexp(w)
//
// so that Σ exp(dst_j) = 1. dst must have length K.
//
// Errors:
//   - ErrDimensionMismatch if len(psi) or len(dst) differs from K.
//   - density.ErrNumericDomain if some ψ_j is ≤ 0, NaN or Inf.
//
// Complexity: O(K).
func LogPsiFrag(dst, psi []float64, m *Model) error {
	k := m.NumIsoforms()
	if len(psi) != k || len(dst) != k {
		return fmt.Errorf("LogPsiFrag: len(psi)=%d len(dst)=%d K=%d: %w", len(psi), len(dst), k, ErrDimensionMismatch)
	}
	for j, v := range psi {
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("LogPsiFrag: psi[%d]=%g: %w", j, v, density.ErrNumericDomain)
		}
		dst[j] = math.Log(v) + m.logScaledLens[j]
	}

	norm := floats.LogSumExp(dst)
	for j := range dst {
		dst[j] -= norm
	}

	return nil
}
