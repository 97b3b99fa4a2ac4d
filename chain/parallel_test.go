package chain_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psimcmc/chain"
	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/sampling"
)

func TestRunChains_IndependentAndReproducible(t *testing.T) {
	reads := append(uniqueReads(40, 60), isoform.NewRead(1, 1), isoform.NewRead(1, 1))
	cfg := smallConfig()

	run := func() []*chain.Trace {
		traces, err := chain.RunChains(context.Background(), reads, gene(), cfg, 4,
			chain.WithLogger(quiet), chain.WithID("par"))
		require.NoError(t, err)
		require.Len(t, traces, 4)
		return traces
	}
	a, b := run(), run()

	for i := range a {
		assert.Equal(t, a[i], b[i], "chain %d", i)
		assert.Equal(t, fmt.Sprintf("par-%d", i), a[i].ChainID)
		assert.Equal(t, sampling.DeriveSeed(cfg.Seed, uint64(i)), a[i].Seed)
	}
	assert.NotEqual(t, a[0].Samples, a[1].Samples)

	pooled, err := chain.Summarize(a...)
	require.NoError(t, err)
	require.Len(t, pooled, 2)
	assert.InDelta(t, 1, pooled[0].Mean+pooled[1].Mean, 1e-9)
}

// TestRunChains_MatchesSingleChain: chain i of RunChains equals a lone chain
// built with the derived seed.
func TestRunChains_MatchesSingleChain(t *testing.T) {
	reads := uniqueReads(10, 10)
	cfg := smallConfig()
	traces, err := chain.RunChains(context.Background(), reads, gene(), cfg, 2,
		chain.WithLogger(quiet), chain.WithID("x"))
	require.NoError(t, err)

	lone := cfg
	lone.Seed = sampling.DeriveSeed(cfg.Seed, 1)
	c, err := chain.New(reads, gene(), lone, chain.WithLogger(quiet), chain.WithID("x-1"))
	require.NoError(t, err)
	want, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, traces[1])
}

func TestRunChains_Errors(t *testing.T) {
	_, err := chain.RunChains(context.Background(), nil, gene(), smallConfig(), 0)
	assert.ErrorIs(t, err, chain.ErrInvalidConfig)

	bad := smallConfig()
	bad.Iterations = 0
	_, err = chain.RunChains(context.Background(), nil, gene(), bad, 2)
	assert.ErrorIs(t, err, chain.ErrInvalidConfig)

	_, err = chain.RunChains(context.Background(), []isoform.Read{isoform.NewRead(0, 0)}, gene(), smallConfig(), 3,
		chain.WithLogger(quiet))
	var ie *chain.IterationError
	assert.ErrorAs(t, err, &ie)
}
