package mh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/psimcmc/density"
	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/mh"
	"github.com/katalvlaran/psimcmc/sampling"
)

func scenario(t testing.TB) (*isoform.Model, []isoform.Read, []int) {
	t.Helper()
	m, err := isoform.NewModel(isoform.Gene{IsoLens: []int{1253, 1172}, PartsPerIsoform: []int{3, 2}}, 40, 4)
	require.NoError(t, err)

	return m, []isoform.Read{isoform.NewRead(1, 0), isoform.NewRead(0, 1)}, []int{0, 1}
}

// TestAcceptance_DegenerateProposalIsOne: proposing the current point gives a
// log ratio of exactly 0 and an acceptance probability of exactly 1.
func TestAcceptance_DegenerateProposalIsOne(t *testing.T) {
	m, reads, a := scenario(t)
	target, err := mh.NewTarget(isoform.NewFast(m), reads, nil)
	require.NoError(t, err)
	prop, err := mh.NewProposal(2, 0.05, density.DefaultClampEpsilon)
	require.NoError(t, err)

	for _, psi := range [][]float64{{0.5, 0.5}, {0.1, 0.9}, {0.999, 0.001}} {
		ratio, err := mh.LogAcceptanceRatio(target, prop, psi, psi, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, ratio)
		assert.Equal(t, 1.0, mh.AcceptanceProbability(ratio))
	}
}

func TestAcceptanceProbability(t *testing.T) {
	assert.Equal(t, 1.0, mh.AcceptanceProbability(3))
	assert.Equal(t, 1.0, mh.AcceptanceProbability(math.Inf(1)))
	assert.Equal(t, 0.0, mh.AcceptanceProbability(math.Inf(-1)))
	assert.Equal(t, 0.0, mh.AcceptanceProbability(math.NaN()))
	assert.InDelta(t, math.Exp(-0.7), mh.AcceptanceProbability(-0.7), 1e-15)
}

// TestLogPosterior_Scenario spells the target out by hand for two unique reads
// and a uniform prior (log Dir = log 1! = 0).
func TestLogPosterior_Scenario(t *testing.T) {
	m, reads, a := scenario(t)
	target, err := mh.NewTarget(isoform.NewReference(m), reads, nil)
	require.NoError(t, err)

	assert.Equal(t, reads, target.Reads())
	assert.Same(t, m, target.Model())

	got, err := target.LogPosterior([]float64{0.5, 0.5}, a)
	require.NoError(t, err)

	total := 1214.0 + 1133.0
	want := -math.Log(1202) - math.Log(1127) + math.Log(1214/total) + math.Log(1133/total)
	assert.InDelta(t, want, got, 1e-9)

	// Swapped assignments are impossible.
	got, err = target.LogPosterior([]float64{0.5, 0.5}, []int{1, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))
}

func TestTarget_Errors(t *testing.T) {
	m, reads, a := scenario(t)
	s := isoform.NewFast(m)

	_, err := mh.NewTarget(s, reads, []float64{1})
	assert.ErrorIs(t, err, mh.ErrDimensionMismatch)
	_, err = mh.NewTarget(s, reads, []float64{1, 0})
	assert.ErrorIs(t, err, mh.ErrNumericDomain)

	target, err := mh.NewTarget(s, reads, []float64{2, 2})
	require.NoError(t, err)
	_, err = target.LogPosterior([]float64{1, 0}, a)
	assert.ErrorIs(t, err, mh.ErrNumericDomain)
	assert.ErrorIs(t, err, density.ErrNumericDomain)
	_, err = target.LogPosterior([]float64{0.5, 0.5}, a[:1])
	assert.ErrorIs(t, err, isoform.ErrDimensionMismatch)
}

func TestProposal_StaysOnSimplex(t *testing.T) {
	rng := sampling.NewRNG(77)
	for _, k := range []int{2, 3, 5} {
		p, err := mh.NewProposal(k, 4, density.DefaultClampEpsilon)
		require.NoError(t, err)
		psi := make([]float64, k)
		for i := range psi {
			psi[i] = 1 / float64(k)
		}
		out := make([]float64, k)
		for trial := 0; trial < 500; trial++ {
			_, err = p.Propose(out, psi, rng)
			require.NoError(t, err)
			var sum float64
			for _, v := range out {
				require.Greater(t, v, 0.0)
				sum += v
			}
			require.InDelta(t, 1, sum, 1e-12)
			copy(psi, out)
		}
	}
}

// TestProposal_LogDensityMatchesReference compares the diagonal closed form
// with gonum's full-covariance normal.
func TestProposal_LogDensityMatchesReference(t *testing.T) {
	const variance = 0.3
	p, err := mh.NewProposal(3, variance, 0)
	require.NoError(t, err)
	assert.Equal(t, variance, p.Variance())
	assert.Equal(t, 3, p.NumIsoforms())

	from := []float64{0.2, 0.3, 0.5}
	to := []float64{0.25, 0.15, 0.6}
	got, err := p.LogDensity(to, from)
	require.NoError(t, err)

	mu := make([]float64, 2)
	require.NoError(t, density.Logit(mu, from))
	cov := mat.NewSymDense(2, []float64{variance, 0, 0, variance})
	want, err := density.ReferenceLogisticNormalLogPdf(to[:2], mu, cov)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-10)

	corr, err := p.LogCorrection(from, to)
	require.NoError(t, err)
	back, _ := p.LogDensity(from, to)
	assert.InDelta(t, back-got, corr, 1e-12)
}

func TestProposal_Errors(t *testing.T) {
	_, err := mh.NewProposal(1, 1, 0)
	assert.ErrorIs(t, err, mh.ErrDimensionMismatch)
	_, err = mh.NewProposal(2, 0, 0)
	assert.ErrorIs(t, err, mh.ErrNumericDomain)
	_, err = mh.NewProposal(2, 1, 0.5)
	assert.ErrorIs(t, err, mh.ErrNumericDomain)

	p, err := mh.NewProposal(2, 1, 0)
	require.NoError(t, err)
	rng := sampling.NewRNG(1)
	_, err = p.Propose(nil, []float64{1, 0}, rng)
	assert.ErrorIs(t, err, mh.ErrNumericDomain)
	_, err = p.Propose(nil, []float64{1}, rng)
	assert.ErrorIs(t, err, mh.ErrDimensionMismatch)
	_, err = p.Propose(make([]float64, 3), []float64{0.5, 0.5}, rng)
	assert.ErrorIs(t, err, mh.ErrDimensionMismatch)
}

// TestProposal_FlooredPointTinyEpsilon: with eps below 1 ulp of 1.0 a clamped
// point has a first coordinate of exactly 1, yet its density must stay finite.
func TestProposal_FlooredPointTinyEpsilon(t *testing.T) {
	const eps = 1e-20
	p, err := mh.NewProposal(2, 1e6, eps)
	require.NoError(t, err)

	floored := []float64{1, 0}
	require.NoError(t, density.ClampSimplex(floored, floored, eps))
	center := []float64{0.5, 0.5}

	lq, err := p.LogDensity(floored, center)
	require.NoError(t, err)
	assert.False(t, math.IsInf(lq, 0) || math.IsNaN(lq))

	lq, err = p.LogDensity(center, floored)
	require.NoError(t, err)
	assert.False(t, math.IsInf(lq, 0) || math.IsNaN(lq))

	corr, err := p.LogCorrection(center, floored)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(corr))

	rng := sampling.NewRNG(99)
	out := make([]float64, 2)
	hits := 0
	for trial := 0; trial < 200; trial++ {
		_, err = p.Propose(out, center, rng)
		require.NoError(t, err)
		if math.Min(out[0], out[1]) < 1e-15 {
			hits++
			_, err = p.LogDensity(out, center)
			require.NoError(t, err, "trial %d psi %v", trial, out)
		}
	}
	assert.Greater(t, hits, 0)
}

// TestStep_TinyEpsilonWideProposal runs the chain where nearly every proposal
// lands on the eps floor; no step may abort.
func TestStep_TinyEpsilonWideProposal(t *testing.T) {
	m, reads, a := scenario(t)
	target, err := mh.NewTarget(isoform.NewFast(m), reads, nil)
	require.NoError(t, err)
	p, err := mh.NewProposal(2, 1e6, 1e-20)
	require.NoError(t, err)
	stepper, err := mh.NewStepper(target, p)
	require.NoError(t, err)

	st, err := mh.NewState([]float64{0.5, 0.5}, a, m)
	require.NoError(t, err)
	rng := sampling.NewRNG(7)
	for i := 0; i < 500; i++ {
		_, err = stepper.Step(st, rng)
		require.NoError(t, err, "step %d", i)
		require.Greater(t, st.Psi[0], 0.0)
		require.Greater(t, st.Psi[1], 0.0)
	}
}

// TestStep_ConsumesFixedUniforms: one Step with K=2 reads 2 uniforms for the
// normal and 1 for the accept draw, accepted or not.
func TestStep_ConsumesFixedUniforms(t *testing.T) {
	m, reads, a := scenario(t)
	target, err := mh.NewTarget(isoform.NewFast(m), reads, nil)
	require.NoError(t, err)

	for _, variance := range []float64{1e-6, 50} {
		p, err := mh.NewProposal(2, variance, density.DefaultClampEpsilon)
		require.NoError(t, err)
		stepper, err := mh.NewStepper(target, p)
		require.NoError(t, err)

		for seed := uint64(1); seed <= 20; seed++ {
			st, err := mh.NewState([]float64{0.5, 0.5}, a, m)
			require.NoError(t, err)
			rngA, rngB := sampling.NewRNG(seed), sampling.NewRNG(seed)
			_, err = stepper.Step(st, rngA)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				rngB.Float64()
			}
			require.Equal(t, rngB.Uint64(), rngA.Uint64(), "variance %g seed %d", variance, seed)
		}
	}
}

// TestStep_StationaryBeta: with no reads the target is the Dirichlet prior
// alone, so the chain must reproduce the Beta(2,5) mean 2/7.
func TestStep_StationaryBeta(t *testing.T) {
	m, _, _ := scenario(t)
	target, err := mh.NewTarget(isoform.NewFast(m), nil, []float64{2, 5})
	require.NoError(t, err)
	p, err := mh.NewProposal(2, 1, density.DefaultClampEpsilon)
	require.NoError(t, err)
	stepper, err := mh.NewStepper(target, p)
	require.NoError(t, err)

	st, err := mh.NewState([]float64{0.5, 0.5}, nil, m)
	require.NoError(t, err)
	rng := sampling.NewRNG(2024)

	const burn, n = 1000, 60000
	var sum float64
	accepted := 0
	for i := 0; i < burn+n; i++ {
		ok, err := stepper.Step(st, rng)
		require.NoError(t, err)
		if i < burn {
			continue
		}
		if ok {
			accepted++
		}
		sum += st.Psi[0]
	}
	assert.InDelta(t, 2.0/7.0, sum/n, 0.02)
	assert.Greater(t, accepted, 0)
	assert.Less(t, accepted, n)
}

func TestStep_RefreshesLogPsiFrag(t *testing.T) {
	m, reads, a := scenario(t)
	target, err := mh.NewTarget(isoform.NewFast(m), reads, nil)
	require.NoError(t, err)
	p, err := mh.NewProposal(2, 0.5, density.DefaultClampEpsilon)
	require.NoError(t, err)
	stepper, err := mh.NewStepper(target, p)
	require.NoError(t, err)

	st, err := mh.NewState([]float64{0.5, 0.5}, a, m)
	require.NoError(t, err)
	rng := sampling.NewRNG(5)
	want := make([]float64, 2)
	for i := 0; i < 200; i++ {
		_, err = stepper.Step(st, rng)
		require.NoError(t, err)
		require.NoError(t, isoform.LogPsiFrag(want, st.Psi, m))
		require.Equal(t, want, st.LogPsiFrag)

		lp, err := target.LogPosterior(st.Psi, a)
		require.NoError(t, err)
		require.Equal(t, lp, st.LogPosterior)
	}

	_, err = mh.NewStepper(target, mustProposal(t, 3))
	assert.ErrorIs(t, err, mh.ErrDimensionMismatch)
}

func mustProposal(t testing.TB, k int) *mh.Proposal {
	t.Helper()
	p, err := mh.NewProposal(k, 1, 0)
	require.NoError(t, err)

	return p
}
