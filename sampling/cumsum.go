// SPDX-License-Identifier: MIT

package sampling

// CumulativeSum returns the running sum of values: out[i] = values[0]+…+values[i].
//
// Summation is strictly left-to-right, so the result is bit-identical to any
// other left-to-right implementation such as NaiveCumulativeSum.
//
// Complexity: O(n) time, one allocation of n float64.
func CumulativeSum(values []float64) []float64 {
	out := make([]float64, len(values))
	_ = CumulativeSumInto(out, values)

	return out
}

// CumulativeSumInto writes the running sum of values into dst without allocating.
// dst and values may alias. Returns ErrDimensionMismatch if len(dst) != len(values).
//
// Complexity: O(n) time, O(1) extra space.
func CumulativeSumInto(dst, values []float64) error {
	if len(dst) != len(values) {
		return ErrDimensionMismatch
	}

	if len(values) == 0 {
		return nil
	}

	// Seed with the first element (not 0+v) so a leading -0 survives.
	acc := values[0]
	dst[0] = acc
	for i := 1; i < len(values); i++ {
		acc += values[i]
		dst[i] = acc
	}

	return nil
}
