// SPDX-License-Identifier: MIT

package gibbs

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/sampling"
)

// Sampler performs Gibbs sweeps over the assignment vector.
type Sampler struct {
	scorer isoform.Scorer
	model  *isoform.Model

	// weights holds one candidate weight per isoform, reused across reads.
	weights []float64
}

// New returns a Sampler scoring reads with s over s.Model().
func New(s isoform.Scorer) *Sampler {
	m := s.Model()

	return &Sampler{
		scorer:  s,
		model:   m,
		weights: make([]float64, m.NumIsoforms()),
	}
}

// Init draws a starting assignment for every read, uniformly over the isoforms
// the model admits for it. dst is reused when it has enough capacity.
//
// Errors:
//   - *ReadError wrapping ErrIncompatibleRead for a read with no admissible isoform.
func (s *Sampler) Init(dst []int, reads []isoform.Read, rng *rand.Rand) ([]int, error) {
	if cap(dst) < len(reads) {
		dst = make([]int, len(reads))
	}
	dst = dst[:len(reads)]

	k := s.model.NumIsoforms()
	var (
		n, j, c, pick int
		r             isoform.Read
	)
	for n, r = range reads {
		c = 0
		for j = 0; j < k; j++ {
			if s.model.Admits(r, j) {
				c++
			}
		}
		if c == 0 {
			return nil, &ReadError{Index: n, Err: ErrIncompatibleRead}
		}

		pick = rng.IntN(c)
		for j = 0; j < k; j++ {
			if !s.model.Admits(r, j) {
				continue
			}
			if pick == 0 {
				dst[n] = j
				break
			}
			pick--
		}
	}

	return dst, nil
}

// Sweep resamples every assignment in place from its full conditional.
//
// Implementation:
//   - Stage 1: validate shapes once.
//   - Stage 2: per read, fill the candidate weights, shift by the maximum,
//     exponentiate; inadmissible isoforms get weight 0.
//   - Stage 3: draw the new isoform with sampling.SampleCategorical.
//
// Errors:
//   - ErrDimensionMismatch when len(assignments) != len(reads) or
//     len(logPsiFrag) != K.
//   - *ReadError wrapping ErrIncompatibleRead when every weight is −Inf.
//
// Complexity: O(N·K) time, no allocation.
func (s *Sampler) Sweep(assignments []int, reads []isoform.Read, logPsiFrag []float64, rng *rand.Rand) error {
	// Stage 1
	if len(assignments) != len(reads) {
		return fmt.Errorf("Sweep: %d assignments vs %d reads: %w", len(assignments), len(reads), ErrDimensionMismatch)
	}
	if len(logPsiFrag) != s.model.NumIsoforms() {
		return fmt.Errorf("Sweep: len(logPsiFrag)=%d K=%d: %w", len(logPsiFrag), s.model.NumIsoforms(), ErrDimensionMismatch)
	}

	for n, r := range reads {
		// Stage 2
		if err := s.fillWeights(r, logPsiFrag); err != nil {
			return &ReadError{Index: n, Err: err}
		}

		// Stage 3
		j, err := sampling.SampleCategorical(s.weights, rng)
		if err != nil {
			return &ReadError{Index: n, Err: err}
		}
		assignments[n] = j
	}

	return nil
}

// Conditional writes the normalized full conditional of read r into dst.
//
// Errors:
//   - ErrDimensionMismatch when len(dst) or len(logPsiFrag) differs from K.
//   - ErrIncompatibleRead when the model admits no isoform for r.
func (s *Sampler) Conditional(dst []float64, r isoform.Read, logPsiFrag []float64) error {
	k := s.model.NumIsoforms()
	if len(dst) != k || len(logPsiFrag) != k {
		return fmt.Errorf("Conditional: len(dst)=%d len(logPsiFrag)=%d K=%d: %w", len(dst), len(logPsiFrag), k, ErrDimensionMismatch)
	}
	if err := s.fillWeights(r, logPsiFrag); err != nil {
		return err
	}

	var total float64
	for _, w := range s.weights {
		total += w
	}
	for j, w := range s.weights {
		dst[j] = w / total
	}

	return nil
}

// fillWeights leaves exp(w_j − max w) in s.weights, 0 for inadmissible j.
func (s *Sampler) fillWeights(r isoform.Read, logPsiFrag []float64) error {
	best := math.Inf(-1)
	for j := range s.weights {
		w := math.Inf(-1)
		if s.model.Admits(r, j) {
			w = logPsiFrag[j] + s.scorer.LogScoreRead(r, j)
		}
		s.weights[j] = w
		if w > best {
			best = w
		}
	}
	if math.IsInf(best, -1) || math.IsNaN(best) {
		return ErrIncompatibleRead
	}

	for j, w := range s.weights {
		if math.IsInf(w, -1) {
			s.weights[j] = 0
			continue
		}
		s.weights[j] = math.Exp(w - best)
	}

	return nil
}
