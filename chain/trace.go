// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrEmptyTrace is returned when summarizing traces that hold no samples.
var ErrEmptyTrace = errors.New("chain: trace holds no samples")

// Sample is one recorded chain state.
type Sample struct {
	Iteration    int       `json:"iteration" yaml:"iteration"`
	Psi          []float64 `json:"psi" yaml:"psi"`
	Counts       []int     `json:"counts" yaml:"counts"`
	Assignments  []int     `json:"assignments,omitempty" yaml:"assignments,omitempty"`
	LogPosterior float64   `json:"log_posterior" yaml:"log_posterior"`
	Accepted     bool      `json:"accepted" yaml:"accepted"`
}

// Trace is the ordered output of one chain.
type Trace struct {
	ChainID     string   `json:"chain_id" yaml:"chain_id"`
	Seed        uint64   `json:"seed" yaml:"seed"`
	NumIsoforms int      `json:"num_isoforms" yaml:"num_isoforms"`
	Samples     []Sample `json:"samples" yaml:"samples"`

	// Proposals and Accepted count every MH step, burn-in included.
	Proposals int `json:"proposals" yaml:"proposals"`
	Accepted  int `json:"accepted" yaml:"accepted"`
}

// AcceptanceRate returns Accepted/Proposals, 0 before the first step.
func (t *Trace) AcceptanceRate() float64 {
	if t.Proposals == 0 {
		return 0
	}

	return float64(t.Accepted) / float64(t.Proposals)
}

// PsiColumn returns the recorded Ψ values of one isoform, in sample order.
func (t *Trace) PsiColumn(iso int) []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Psi[iso]
	}

	return out
}

// IsoformSummary is the posterior summary of one isoform's Ψ.
type IsoformSummary struct {
	Mean float64 `json:"mean" yaml:"mean"`
	SD   float64 `json:"sd" yaml:"sd"`
	// Lower and Upper bound the central 95% credible interval.
	Lower float64 `json:"ci_low" yaml:"ci_low"`
	Upper float64 `json:"ci_high" yaml:"ci_high"`
}

// Summary summarizes this trace alone.
func (t *Trace) Summary() ([]IsoformSummary, error) { return Summarize(t) }

// Summarize pools the samples of all traces and returns per-isoform posterior
// mean, sample standard deviation and the 2.5/97.5 percentiles.
//
// Errors:
//   - ErrEmptyTrace when the traces hold no samples.
//   - a wrapped error when traces disagree on the number of isoforms.
func Summarize(traces ...*Trace) ([]IsoformSummary, error) {
	var (
		k     int
		total int
	)
	for i, t := range traces {
		if i == 0 {
			k = t.NumIsoforms
		} else if t.NumIsoforms != k {
			return nil, fmt.Errorf("Summarize: trace %d has %d isoforms, want %d", i, t.NumIsoforms, k)
		}
		total += len(t.Samples)
	}
	if total == 0 {
		return nil, ErrEmptyTrace
	}

	out := make([]IsoformSummary, k)
	column := make(stats.Float64Data, 0, total)
	for iso := 0; iso < k; iso++ {
		column = column[:0]
		for _, t := range traces {
			for _, s := range t.Samples {
				column = append(column, s.Psi[iso])
			}
		}

		s, err := summarizeColumn(column)
		if err != nil {
			return nil, fmt.Errorf("Summarize: isoform %d: %w", iso, err)
		}
		out[iso] = s
	}

	return out, nil
}

func summarizeColumn(column stats.Float64Data) (IsoformSummary, error) {
	var (
		s   IsoformSummary
		err error
	)
	if s.Mean, err = stats.Mean(column); err != nil {
		return s, err
	}
	if len(column) > 1 {
		if s.SD, err = stats.StandardDeviationSample(column); err != nil {
			return s, err
		}
	}
	// Fewer than 40 samples put the 2.5th percentile below the first rank.
	s.Lower, err = stats.Percentile(column, 2.5)
	if errors.Is(err, stats.ErrBounds) {
		s.Lower, err = stats.Min(column)
	}
	if err != nil {
		return s, err
	}
	if s.Upper, err = stats.Percentile(column, 97.5); err != nil {
		return s, err
	}

	return s, nil
}
