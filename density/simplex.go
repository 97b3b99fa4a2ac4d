// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"
)

// DefaultClampEpsilon is the boundary floor applied to proposed simplex points.
const DefaultClampEpsilon = 1e-10

// Logit maps a K-simplex point psi to its additive-logistic coordinates in
// R^(K−1): dst[i] = log(psi[i]/psi[K−1]). len(dst) must be len(psi)−1.
//
// Errors:
//   - ErrDimensionMismatch for K < 2 or a wrongly sized dst.
//   - ErrNumericDomain if any psi[i] ≤ 0 or is non-finite.
func Logit(dst, psi []float64) error {
	k := len(psi)
	if k < 2 || len(dst) != k-1 {
		return fmt.Errorf("Logit: len(psi)=%d len(dst)=%d: %w", k, len(dst), ErrDimensionMismatch)
	}
	for i, p := range psi {
		if !(p > 0) || math.IsInf(p, 0) {
			return fmt.Errorf("Logit: psi[%d]=%g: %w", i, p, ErrNumericDomain)
		}
	}

	logLast := math.Log(psi[k-1])
	for i := 0; i < k-1; i++ {
		dst[i] = math.Log(psi[i]) - logLast
	}

	return nil
}

// InvLogit maps theta ∈ R^(K−1) back to the K-simplex:
//
//	psi_i = exp(θ_i) / (1 + Σexp(θ_j)),  psi_K = 1 / (1 + Σexp(θ_j))
//
// evaluated with a max-shift so large |θ| neither overflows nor produces NaN.
// len(dst) must be len(theta)+1; dst must not alias theta.
//
// Components may underflow to exactly 0 for extreme θ; callers that take logs
// afterwards clamp with ClampSimplex.
func InvLogit(dst, theta []float64) error {
	if len(dst) != len(theta)+1 || len(theta) == 0 {
		return fmt.Errorf("InvLogit: len(theta)=%d len(dst)=%d: %w", len(theta), len(dst), ErrDimensionMismatch)
	}

	shift := 0.0 // the implicit θ_K = 0
	for i, t := range theta {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("InvLogit: theta[%d]=%g: %w", i, t, ErrNumericDomain)
		}
		if t > shift {
			shift = t
		}
	}

	var total float64
	for i, t := range theta {
		dst[i] = math.Exp(t - shift)
		total += dst[i]
	}
	dst[len(theta)] = math.Exp(-shift)
	total += dst[len(theta)]

	for i := range dst {
		dst[i] /= total
	}

	return nil
}

// ClampSimplex floors every component of psi at eps and renormalizes into dst
// (dst may alias psi). The result is strictly positive and sums to one.
//
// Errors:
//   - ErrDimensionMismatch if len(dst) != len(psi) or psi is empty.
//   - ErrNumericDomain if eps is negative or ≥ 1/K, or psi holds a negative,
//     NaN or infinite value.
func ClampSimplex(dst, psi []float64, eps float64) error {
	k := len(psi)
	if k == 0 || len(dst) != k {
		return fmt.Errorf("ClampSimplex: len(psi)=%d len(dst)=%d: %w", k, len(dst), ErrDimensionMismatch)
	}
	if !(eps >= 0) || eps*float64(k) >= 1 {
		return fmt.Errorf("ClampSimplex: eps=%g: %w", eps, ErrNumericDomain)
	}

	var total float64
	for i, p := range psi {
		if !(p >= 0) || math.IsInf(p, 0) {
			return fmt.Errorf("ClampSimplex: psi[%d]=%g: %w", i, p, ErrNumericDomain)
		}
		if p < eps {
			p = eps
		}
		dst[i] = p
		total += p
	}
	if !(total > 0) {
		return fmt.Errorf("ClampSimplex: total mass %g: %w", total, ErrNumericDomain)
	}
	for i := range dst {
		dst[i] /= total
		if !(dst[i] > 0) {
			return fmt.Errorf("ClampSimplex: psi[%d] collapsed to %g: %w", i, dst[i], ErrNumericDomain)
		}
	}

	return nil
}
