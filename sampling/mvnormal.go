// SPDX-License-Identifier: MIT

package sampling

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// MVNormal draws multivariate-normal perturbations x = mu + L·z, where L is the
// lower Cholesky factor of a fixed covariance and z is a vector of independent
// Box–Muller variates.
//
// The factor is computed once in the constructor; SampleInto never allocates.
// Not goroutine-safe: the z buffer is reused between draws.
type MVNormal struct {
	dim   int
	lower []float64 // row-major L, dim×dim, upper triangle zero
	z     []float64
}

// NewMVNormal factorizes cov (Σ = L·Lᵀ) and returns a sampler for N(·, Σ).
//
// Errors:
//   - ErrDimensionMismatch for a 0×0 covariance.
//   - ErrNotPositiveDefinite when the Cholesky factorization fails.
//
// Complexity: O(d³) once.
func NewMVNormal(cov mat.Symmetric) (*MVNormal, error) {
	dim := cov.SymmetricDim()
	if dim == 0 {
		return nil, ErrDimensionMismatch
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, ErrNotPositiveDefinite
	}
	var l mat.TriDense
	chol.LTo(&l)

	lower := make([]float64, dim*dim)
	var i, j int
	for i = 0; i < dim; i++ {
		for j = 0; j <= i; j++ {
			lower[i*dim+j] = l.At(i, j)
		}
	}

	return &MVNormal{dim: dim, lower: lower, z: make([]float64, dim)}, nil
}

// NewMVNormalDiag is NewMVNormal for a diagonal covariance diag(variances).
// Every variance must be finite and strictly positive.
func NewMVNormalDiag(variances []float64) (*MVNormal, error) {
	if len(variances) == 0 {
		return nil, ErrDimensionMismatch
	}
	cov := mat.NewSymDense(len(variances), nil)
	for i, v := range variances {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, ErrNotPositiveDefinite
		}
		cov.SetSym(i, i, v)
	}

	return NewMVNormal(cov)
}

// Dim returns the dimension of the distribution.
func (n *MVNormal) Dim() int { return n.dim }

// Lower returns a copy of the Cholesky factor L as a dense row slice.
func (n *MVNormal) Lower() [][]float64 {
	out := make([][]float64, n.dim)
	for i := range out {
		out[i] = make([]float64, n.dim)
		copy(out[i], n.lower[i*n.dim:(i+1)*n.dim])
	}

	return out
}

// SampleInto writes mu + L·z into dst. dst may alias mu.
// Consumes exactly 2·Dim() uniforms from rng.
func (n *MVNormal) SampleInto(dst, mu []float64, rng *rand.Rand) error {
	if len(dst) != n.dim || len(mu) != n.dim {
		return ErrDimensionMismatch
	}

	FillStandardNormal(n.z, rng)

	var (
		i, j int
		s    float64
		row  []float64
	)
	for i = 0; i < n.dim; i++ {
		row = n.lower[i*n.dim : i*n.dim+i+1]
		s = mu[i]
		for j = 0; j <= i; j++ {
			s += row[j] * n.z[j]
		}
		dst[i] = s
	}

	return nil
}
