// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"
)

var log2Pi = math.Log(2 * math.Pi)

// LogisticNormalLogPdf returns the log-density of a logistic-normal distribution
// with mean mu and covariance diagonalVariance·I, evaluated at the simplex point
// whose first K−1 coordinates are theta (the last is 1 − Σtheta).
//
// With d = K−1, θ_K = 1 − Σθ and z_i = log(θ_i/θ_K) − μ_i:
//
//	log p = −(d/2)·log(2π) − (d/2)·log σ²     (normal constant, det = σ^(2d))
//	        − Σ_{i≤K} log θ_i                  (Jacobian of the logit transform)
//	        − ½·Σ z_i² / σ²                    (Mahalanobis term)
//
// Errors:
//   - ErrDimensionMismatch if len(theta) != len(mu) or theta is empty.
//   - ErrNumericDomain if diagonalVariance ≤ 0, any θ_i ≤ 0 or θ_K ≤ 0.
//
// Complexity: O(K), no allocation.
func LogisticNormalLogPdf(theta, mu []float64, diagonalVariance float64) (float64, error) {
	dim := len(theta)
	if dim != len(mu) || dim == 0 {
		return 0, fmt.Errorf("LogisticNormalLogPdf: len(theta)=%d len(mu)=%d: %w", dim, len(mu), ErrDimensionMismatch)
	}
	if !(diagonalVariance > 0) || math.IsInf(diagonalVariance, 0) {
		return 0, fmt.Errorf("LogisticNormalLogPdf: variance=%g: %w", diagonalVariance, ErrNumericDomain)
	}

	last, err := lastCoordinate(theta)
	if err != nil {
		return 0, fmt.Errorf("LogisticNormalLogPdf: %w", err)
	}

	return logisticNormal(theta, last, mu, diagonalVariance), nil
}

// LogisticNormalLogPdfSimplex is LogisticNormalLogPdf evaluated at a full
// K-vector psi: psi[K−1] is taken as the last coordinate instead of being
// rebuilt as 1 − Σpsi[:K−1]. Points floored by ClampSimplex at an eps far below
// the float64 resolution of 1 therefore stay in the domain.
//
// psi is not required to sum to exactly one; it must be strictly positive.
//
// Errors:
//   - ErrDimensionMismatch if len(psi) != len(mu)+1 or mu is empty.
//   - ErrNumericDomain if diagonalVariance ≤ 0 or any psi_i ≤ 0 or ±Inf.
func LogisticNormalLogPdfSimplex(psi, mu []float64, diagonalVariance float64) (float64, error) {
	if len(mu) == 0 || len(psi) != len(mu)+1 {
		return 0, fmt.Errorf("LogisticNormalLogPdfSimplex: len(psi)=%d len(mu)=%d: %w", len(psi), len(mu), ErrDimensionMismatch)
	}
	if !(diagonalVariance > 0) || math.IsInf(diagonalVariance, 0) {
		return 0, fmt.Errorf("LogisticNormalLogPdfSimplex: variance=%g: %w", diagonalVariance, ErrNumericDomain)
	}
	for i, v := range psi {
		if !(v > 0) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("LogisticNormalLogPdfSimplex: psi[%d]=%g: %w", i, v, ErrNumericDomain)
		}
	}
	k := len(psi)

	return logisticNormal(psi[:k-1], psi[k-1], mu, diagonalVariance), nil
}

// logisticNormal evaluates the closed form once theta, last and the variance
// have been validated.
func logisticNormal(theta []float64, last float64, mu []float64, diagonalVariance float64) float64 {
	logLast := math.Log(last)

	var (
		jac  = -logLast
		maha float64
		lt   float64
		z    float64
	)
	for i, t := range theta {
		lt = math.Log(t)
		jac -= lt
		z = lt - logLast - mu[i]
		maha += z * z
	}

	d := float64(len(theta))
	norm := -0.5*d*log2Pi - 0.5*d*math.Log(diagonalVariance)

	return norm + jac - 0.5*maha/diagonalVariance
}

// lastCoordinate returns 1 − Σtheta after checking that theta lies strictly
// inside the simplex.
func lastCoordinate(theta []float64) (float64, error) {
	var sum float64
	for i, t := range theta {
		if !(t > 0) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("theta[%d]=%g: %w", i, t, ErrNumericDomain)
		}
		sum += t
	}
	last := 1 - sum
	if !(last > 0) {
		return 0, fmt.Errorf("last coordinate 1-Σθ=%g: %w", last, ErrNumericDomain)
	}

	return last, nil
}
