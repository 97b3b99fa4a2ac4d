// SPDX-License-Identifier: MIT

// Package sampling - straightforward reference kernels.
//
// These versions favour obviousness over speed: they allocate freely, rebuild
// intermediate state on every call and keep every loop in its plainest form. They
// exist for differential tests (optimised vs reference must agree) and as the
// baseline in benchmarks. Generator consumption mirrors the optimised kernels
// one-for-one, so equal seeds give equal outcomes.
package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// NaiveCumulativeSum returns the running sum of values, accumulated strictly
// left to right into a fresh slice.
func NaiveCumulativeSum(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + values[i]
	}

	return out
}

// NaiveSampleMultinomial draws numDraws outcomes from p, rebuilding the
// cumulative weights for every single draw.
func NaiveSampleMultinomial(p []float64, numDraws int, rng *rand.Rand) ([]int, error) {
	if numDraws < 0 {
		return nil, ErrNegativeDraws
	}
	if _, err := checkDistribution(p); err != nil {
		return nil, err
	}

	counts := make([]int, len(p))
	var (
		d, i int
		cdf  []float64
		u    float64
	)
	for d = 0; d < numDraws; d++ {
		cdf = NaiveCumulativeSum(p)
		u = rng.Float64() * cdf[len(cdf)-1]
		for i = 0; i < len(cdf); i++ {
			if u < cdf[i] {
				break
			}
		}
		if i == len(cdf) {
			i = lastPositive(p)
		}
		counts[i]++
	}

	return counts, nil
}

// NaiveCholesky performs a Cholesky–Banachiewicz factorization of the symmetric
// positive-definite matrix a and returns the lower-triangular L with a = L·Lᵀ.
//
// Errors:
//   - ErrDimensionMismatch when a is empty or not square.
//   - ErrNotPositiveDefinite when a pivot is not strictly positive.
//
// Time Complexity: O(n³); Memory: O(n²) for L.
func NaiveCholesky(a [][]float64) ([][]float64, error) {
	// Stage 1: Validate input is square
	n := len(a)
	if n == 0 {
		return nil, fmt.Errorf("NaiveCholesky: empty matrix: %w", ErrDimensionMismatch)
	}
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("NaiveCholesky: row %d has %d columns, want %d: %w", i, len(a[i]), n, ErrDimensionMismatch)
		}
	}

	// Stage 2: Prepare L
	L := make([][]float64, n)
	for i := range L {
		L[i] = make([]float64, n)
	}

	// Stage 3: Row-by-row factorization
	var (
		i, j, k int
		sum     float64 // accumulator for dot products
		pivot   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += L[i][k] * L[j][k]
			}
			if i == j {
				pivot = a[i][i] - sum
				if !(pivot > 0) {
					return nil, fmt.Errorf("NaiveCholesky: pivot %d = %g: %w", i, pivot, ErrNotPositiveDefinite)
				}
				L[i][i] = math.Sqrt(pivot)
				continue
			}
			L[i][j] = (a[i][j] - sum) / L[j][j]
		}
	}

	// Stage 4: Finalize and return
	return L, nil
}

// NaiveSampleMVNormal factorizes cov on every call and returns mu + L·z.
func NaiveSampleMVNormal(mu []float64, cov [][]float64, rng *rand.Rand) ([]float64, error) {
	if len(mu) != len(cov) {
		return nil, ErrDimensionMismatch
	}
	L, err := NaiveCholesky(cov)
	if err != nil {
		return nil, err
	}

	z := make([]float64, len(mu))
	for i := range z {
		z[i] = StandardNormalBoxMuller(rng)
	}
	out := make([]float64, len(mu))
	for i := range out {
		s := mu[i]
		for j := 0; j <= i; j++ {
			s += L[i][j] * z[j]
		}
		out[i] = s
	}

	return out, nil
}
