// SPDX-License-Identifier: MIT

package isoform

import "fmt"

// LogScoreAssignments writes log P(assignment_n | Ψ) = logPsiFrag[assignment_n]
// for every read into dst (reallocated when too small) and returns it.
//
// Errors:
//   - ErrIsoformOutOfRange if some assignment ∉ [0, len(logPsiFrag)).
func LogScoreAssignments(dst []float64, assignments []int, logPsiFrag []float64) ([]float64, error) {
	k := len(logPsiFrag)
	dst = reuse(dst, len(assignments))
	for n, a := range assignments {
		if a < 0 || a >= k {
			return nil, fmt.Errorf("LogScoreAssignments: read %d isoform %d (K=%d): %w", n, a, k, ErrIsoformOutOfRange)
		}
		dst[n] = logPsiFrag[a]
	}

	return dst, nil
}

// SumLogScoreAssignments returns Σ_n logPsiFrag[assignment_n], summed left to right.
func SumLogScoreAssignments(assignments []int, logPsiFrag []float64) (float64, error) {
	k := len(logPsiFrag)

	var total float64
	for n, a := range assignments {
		if a < 0 || a >= k {
			return 0, fmt.Errorf("SumLogScoreAssignments: read %d isoform %d (K=%d): %w", n, a, k, ErrIsoformOutOfRange)
		}
		total += logPsiFrag[a]
	}

	return total, nil
}

// Counts tallies how many reads are assigned to each of k isoforms. dst is
// reused when it has capacity k and is zeroed first.
func Counts(dst []int, assignments []int, k int) ([]int, error) {
	if cap(dst) < k {
		dst = make([]int, k)
	} else {
		dst = dst[:k]
		for i := range dst {
			dst[i] = 0
		}
	}
	for n, a := range assignments {
		if a < 0 || a >= k {
			return nil, fmt.Errorf("Counts: read %d isoform %d (K=%d): %w", n, a, k, ErrIsoformOutOfRange)
		}
		dst[a]++
	}

	return dst, nil
}
