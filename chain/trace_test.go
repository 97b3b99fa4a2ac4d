package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psimcmc/chain"
)

func traceOf(psi0 ...float64) *chain.Trace {
	tr := &chain.Trace{NumIsoforms: 2}
	for i, p := range psi0 {
		tr.Samples = append(tr.Samples, chain.Sample{Iteration: i, Psi: []float64{p, 1 - p}})
	}

	return tr
}

func TestTrace_AcceptanceRate(t *testing.T) {
	tr := &chain.Trace{}
	assert.Equal(t, 0.0, tr.AcceptanceRate())
	tr.Proposals, tr.Accepted = 8, 2
	assert.Equal(t, 0.25, tr.AcceptanceRate())
}

func TestTrace_Summary(t *testing.T) {
	tr := traceOf(0.1, 0.2, 0.3, 0.4)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, tr.PsiColumn(0))

	sum, err := tr.Summary()
	require.NoError(t, err)
	require.Len(t, sum, 2)
	assert.InDelta(t, 0.25, sum[0].Mean, 1e-12)
	assert.InDelta(t, 0.75, sum[1].Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.05/3), sum[0].SD, 1e-12)
	// 4 samples: the lower tail falls back to the minimum.
	assert.InDelta(t, 0.1, sum[0].Lower, 1e-12)
	assert.LessOrEqual(t, sum[0].Upper, 0.4)
	assert.Greater(t, sum[0].Upper, 0.3)
}

func TestTrace_SummarySingleSample(t *testing.T) {
	sum, err := traceOf(0.6).Summary()
	require.NoError(t, err)
	assert.Equal(t, chain.IsoformSummary{Mean: 0.6, SD: 0, Lower: 0.6, Upper: 0.6}, sum[0])
}

func TestSummarize_PoolsAndRejects(t *testing.T) {
	sum, err := chain.Summarize(traceOf(0.1, 0.3), traceOf(0.5, 0.7))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, sum[0].Mean, 1e-12)

	_, err = chain.Summarize(&chain.Trace{NumIsoforms: 2})
	assert.ErrorIs(t, err, chain.ErrEmptyTrace)
	_, err = chain.Summarize()
	assert.ErrorIs(t, err, chain.ErrEmptyTrace)

	_, err = chain.Summarize(traceOf(0.5), &chain.Trace{NumIsoforms: 3})
	assert.Error(t, err)
}
