// SPDX-License-Identifier: MIT

package sampling

import (
	"math"
	"math/rand/v2"
)

// SampleMultinomial draws numDraws independent categorical outcomes from p and
// returns the per-category counts (len(counts) == len(p), Σcounts == numDraws).
//
// p need not be normalized: the draw is taken against Σp, so vectors that sum to
// slightly more or less than one behave exactly like their renormalized form.
//
// Errors:
//   - ErrInvalidDistribution if any p[i] is negative/NaN/±Inf or all p[i] are zero.
//   - ErrNegativeDraws if numDraws < 0.
//
// Allocates the counts and a scratch CDF once per call; use SampleMultinomialInto
// in hot loops.
func SampleMultinomial(p []float64, numDraws int, rng *rand.Rand) ([]int, error) {
	counts := make([]int, len(p))
	cdf := make([]float64, len(p))
	if err := SampleMultinomialInto(counts, cdf, p, numDraws, rng); err != nil {
		return nil, err
	}

	return counts, nil
}

// SampleMultinomialInto is the allocation-free form of SampleMultinomial.
// counts receives the per-category totals (it is zeroed first); cdf is scratch
// space for the cumulative weights. Both must have len(p).
//
// Algorithm:
//  1. Validate p and compute the total mass T (left-to-right).
//  2. cdf = CumulativeSum(p); cdf[K-1] == T bit-for-bit.
//  3. For each draw: u = U[0,1)·T, pick the first i with u < cdf[i].
//
// Zero-weight categories are never selected: their cdf entry equals the previous
// one, so the strict comparison always stops earlier.
//
// Complexity: O(K + numDraws·K) time, O(1) extra space. K is tiny (isoforms),
// so the linear scan beats a binary search.
func SampleMultinomialInto(counts []int, cdf []float64, p []float64, numDraws int, rng *rand.Rand) error {
	if len(counts) != len(p) || len(cdf) != len(p) {
		return ErrDimensionMismatch
	}
	if numDraws < 0 {
		return ErrNegativeDraws
	}
	total, err := checkDistribution(p)
	if err != nil {
		return err
	}

	_ = CumulativeSumInto(cdf, p)
	clear(counts)

	var (
		d int
		u float64
	)
	for d = 0; d < numDraws; d++ {
		u = rng.Float64() * total
		counts[searchCDF(cdf, u)]++
	}

	return nil
}

// SampleCategorical draws a single outcome from p and returns its index.
// It is the numDraws==1 multinomial: same validation, same left-to-right
// cumulative comparison, exactly one uniform consumed. No allocation.
func SampleCategorical(p []float64, rng *rand.Rand) (int, error) {
	total, err := checkDistribution(p)
	if err != nil {
		return 0, err
	}

	u := rng.Float64() * total
	acc := p[0]
	if u < acc {
		return 0, nil
	}
	for i := 1; i < len(p); i++ {
		acc += p[i]
		if u < acc {
			return i, nil
		}
	}

	return lastPositive(p), nil
}

// checkDistribution validates p and returns its left-to-right total.
func checkDistribution(p []float64) (float64, error) {
	if len(p) == 0 {
		return 0, ErrInvalidDistribution
	}

	var total float64
	for i, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrInvalidDistribution
		}
		if i == 0 {
			total = v
		} else {
			total += v
		}
	}
	if total <= 0 || math.IsInf(total, 0) {
		return 0, ErrInvalidDistribution
	}

	return total, nil
}

// searchCDF returns the first index with u < cdf[i]. When rounding pushes u up
// to the total, the last category with positive mass is returned.
func searchCDF(cdf []float64, u float64) int {
	for i, c := range cdf {
		if u < c {
			return i
		}
	}
	// cdf is non-decreasing; the last strict increase is the last positive weight.
	for i := len(cdf) - 1; i > 0; i-- {
		if cdf[i] > cdf[i-1] {
			return i
		}
	}

	return 0
}

func lastPositive(p []float64) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] > 0 {
			return i
		}
	}

	return 0
}
