package gibbs_test

import (
	"testing"

	"github.com/katalvlaran/psimcmc/gibbs"
	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/sampling"
)

// BenchmarkSweep measures one full sweep over 10k mixed reads.
func BenchmarkSweep(b *testing.B) {
	m := newModel(b)
	rng := sampling.NewRNG(1)
	reads := make([]isoform.Read, 10000)
	for i := range reads {
		reads[i] = isoform.Read(1 + rng.IntN(3))
	}
	lpf := logPsiFrag(b, m, []float64{0.4, 0.6})

	for _, kind := range []string{isoform.ScorerFast, isoform.ScorerReference} {
		sc, err := isoform.NewScorer(kind, m)
		if err != nil {
			b.Fatal(err)
		}
		s := gibbs.New(sc)
		assignments, err := s.Init(nil, reads, rng)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(kind, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Sweep(assignments, reads, lpf, rng)
			}
		})
	}
}
