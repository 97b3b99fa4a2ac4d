// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// ReferenceDirichletLogPdf evaluates log Dir(x | alpha) through gonum's
// distmv.Dirichlet. It builds a fresh distribution on every call.
// Same error contract as DirichletLogPdf; gonum panics are never reached.
func ReferenceDirichletLogPdf(x, alpha []float64) (float64, error) {
	if len(x) != len(alpha) || len(x) == 0 {
		return 0, ErrDimensionMismatch
	}
	for i, a := range alpha {
		if !(a > 0) || math.IsInf(a, 0) || !(x[i] >= 0) || math.IsInf(x[i], 0) {
			return 0, ErrNumericDomain
		}
	}

	return distmv.NewDirichlet(alpha, nil).LogProb(x), nil
}

// ReferenceLogisticNormalLogPdf evaluates the logistic-normal log-density with
// an arbitrary covariance cov ((K−1)×(K−1)): the gonum multivariate-normal
// log-density of logit(theta) plus the Jacobian −Σ_{i≤K} log θ_i.
//
// With cov = σ²·I it agrees with LogisticNormalLogPdf(theta, mu, σ²).
func ReferenceLogisticNormalLogPdf(theta, mu []float64, cov mat.Symmetric) (float64, error) {
	dim := len(theta)
	if dim != len(mu) || dim == 0 || cov.SymmetricDim() != dim {
		return 0, ErrDimensionMismatch
	}
	last, err := lastCoordinate(theta)
	if err != nil {
		return 0, fmt.Errorf("ReferenceLogisticNormalLogPdf: %w", err)
	}

	psi := make([]float64, dim+1)
	copy(psi, theta)
	psi[dim] = last
	z := make([]float64, dim)
	if err = Logit(z, psi); err != nil {
		return 0, err
	}

	normal, ok := distmv.NewNormal(mu, cov, nil)
	if !ok {
		return 0, fmt.Errorf("ReferenceLogisticNormalLogPdf: covariance not positive definite: %w", ErrNumericDomain)
	}

	jac := 0.0
	for _, p := range psi {
		jac -= math.Log(p)
	}

	return normal.LogProb(z) + jac, nil
}
