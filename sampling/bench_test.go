package sampling_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/psimcmc/sampling"
)

// benchmarkMultinomial runs one multinomial draw per iteration, the shape of the
// per-read call made by the Gibbs sweep.
func benchmarkMultinomial(b *testing.B, p []float64, numDraws int) {
	rng := sampling.NewRNG(1)
	counts := make([]int, len(p))
	cdf := make([]float64, len(p))

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err := sampling.SampleMultinomialInto(counts, cdf, p, numDraws, rng); err != nil {
			b.Fatalf("SampleMultinomialInto failed: %v", err)
		}
	}
}

// BenchmarkSampleMultinomial_Single is the hot Gibbs shape: 3 categories, 1 draw.
func BenchmarkSampleMultinomial_Single(b *testing.B) {
	benchmarkMultinomial(b, []float64{0.2, 0.1, 0.5}, 1)
}

// BenchmarkSampleMultinomial_Many draws 1000 outcomes per call.
func BenchmarkSampleMultinomial_Many(b *testing.B) {
	benchmarkMultinomial(b, []float64{0.2, 0.1, 0.5}, 1000)
}

// BenchmarkNaiveSampleMultinomial_Single is the reference baseline.
func BenchmarkNaiveSampleMultinomial_Single(b *testing.B) {
	rng := sampling.NewRNG(1)
	p := []float64{0.2, 0.1, 0.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.NaiveSampleMultinomial(p, 1, rng); err != nil {
			b.Fatalf("NaiveSampleMultinomial failed: %v", err)
		}
	}
}

// BenchmarkSampleCategorical measures the single-draw fast path.
func BenchmarkSampleCategorical(b *testing.B) {
	rng := sampling.NewRNG(1)
	p := []float64{0.7, 0.3}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sampling.SampleCategorical(p, rng)
	}
}

// BenchmarkCumulativeSum compares against the gonum-backed reference.
func BenchmarkCumulativeSum(b *testing.B) {
	v := []float64{1, 2, 3, 4}
	dst := make([]float64, len(v))
	b.Run("Into", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sampling.CumulativeSumInto(dst, v)
		}
	})
	b.Run("Naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sampling.NaiveCumulativeSum(v)
		}
	})
}

// BenchmarkStandardNormalBoxMuller measures a single normal draw.
func BenchmarkStandardNormalBoxMuller(b *testing.B) {
	rng := sampling.NewRNG(1)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += sampling.StandardNormalBoxMuller(rng)
	}
	_ = sink
}

// BenchmarkMVNormal compares factor-once sampling with factor-per-call.
func BenchmarkMVNormal(b *testing.B) {
	mu := []float64{2.05, 0.55}
	cov := [][]float64{{0.05, 0}, {0, 0.05}}
	b.Run("FactorOnce", func(b *testing.B) {
		mv, err := sampling.NewMVNormal(mat.NewSymDense(2, []float64{0.05, 0, 0, 0.05}))
		if err != nil {
			b.Fatalf("NewMVNormal failed: %v", err)
		}
		rng := sampling.NewRNG(1)
		dst := make([]float64, 2)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = mv.SampleInto(dst, mu, rng)
		}
	})
	b.Run("Naive", func(b *testing.B) {
		rng := sampling.NewRNG(1)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = sampling.NaiveSampleMVNormal(mu, cov, rng)
		}
	})
}
