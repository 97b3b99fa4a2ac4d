// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/sampling"
)

// RunChains runs n independent chains concurrently and returns their traces
// in chain order. Chain i uses seed sampling.DeriveSeed(cfg.Seed, i). Chains
// get fresh UUIDs, or "<id>-i" when WithID(id) is given.
//
// The first failing chain cancels the others through the shared context;
// its error is returned along with whatever traces completed.
// WithRNG is ignored here: every chain needs its own generator.
func RunChains(ctx context.Context, reads []isoform.Read, gene isoform.Gene, cfg Config, n int, opts ...Option) ([]*Trace, error) {
	if n < 1 {
		return nil, fmt.Errorf("RunChains: n=%d: %w", n, ErrInvalidConfig)
	}

	base := options{}
	for _, opt := range opts {
		opt(&base)
	}

	chains := make([]*Chain, n)
	for i := range chains {
		ccfg := cfg
		ccfg.Seed = sampling.DeriveSeed(cfg.Seed, uint64(i))

		chainOpts := append([]Option(nil), opts...)
		chainOpts = append(chainOpts, WithRNG(sampling.NewRNG(ccfg.Seed)))
		if base.id != "" {
			chainOpts = append(chainOpts, WithID(fmt.Sprintf("%s-%d", base.id, i)))
		}

		c, err := New(reads, gene, ccfg, chainOpts...)
		if err != nil {
			return nil, fmt.Errorf("RunChains: chain %d: %w", i, err)
		}
		chains[i] = c
	}

	traces := make([]*Trace, n)
	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range chains {
		g.Go(func() error {
			t, err := c.Run(gCtx)
			traces[i] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return traces, err
	}

	return traces, nil
}
