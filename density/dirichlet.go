// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"
)

// DirichletLogPdf returns log Dir(x | alpha):
//
//	log Γ(Σα) − Σ log Γ(α_i) + Σ (α_i − 1)·log x_i
//
// x is not required to lie on the simplex; the closed form is evaluated as is
// (DirichletLogPdf([1,1], [0.5,0.5]) = −log π).
//
// Behavior highlights:
//   - α_i == 1 contributes no x-term, so x_i == 0 is legal there.
//   - x_i == 0 with α_i ≠ 1 yields ±Inf (a genuine zero/infinite density).
//
// Errors:
//   - ErrDimensionMismatch if len(x) != len(alpha) or both are empty.
//   - ErrNumericDomain if any α_i ≤ 0 or x_i < 0 (or NaN/Inf anywhere).
//
// Complexity: O(K) time, no allocation.
func DirichletLogPdf(x, alpha []float64) (float64, error) {
	if len(x) != len(alpha) || len(x) == 0 {
		return 0, fmt.Errorf("DirichletLogPdf: len(x)=%d len(alpha)=%d: %w", len(x), len(alpha), ErrDimensionMismatch)
	}

	var (
		sumAlpha float64
		sumLg    float64
		sumX     float64
		lg       float64
	)
	for i, a := range alpha {
		if !(a > 0) || math.IsInf(a, 0) {
			return 0, fmt.Errorf("DirichletLogPdf: alpha[%d]=%g: %w", i, a, ErrNumericDomain)
		}
		if !(x[i] >= 0) || math.IsInf(x[i], 0) {
			return 0, fmt.Errorf("DirichletLogPdf: x[%d]=%g: %w", i, x[i], ErrNumericDomain)
		}
		lg, _ = math.Lgamma(a)
		sumLg += lg
		sumAlpha += a
		if a != 1 {
			sumX += (a - 1) * math.Log(x[i])
		}
	}
	lg, _ = math.Lgamma(sumAlpha)

	return lg - sumLg + sumX, nil
}
