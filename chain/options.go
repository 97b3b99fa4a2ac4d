// SPDX-License-Identifier: MIT

package chain

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	rng     *rand.Rand
	id      string
}

// WithLogger routes chain logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chain: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithMetrics records chain progress in m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("chain: WithMetrics: nil metrics")
	}

	return func(o *options) { o.metrics = m }
}

// WithRNG replaces the seeded generator. The chain takes ownership of rng.
// Panics on nil.
func WithRNG(rng *rand.Rand) Option {
	if rng == nil {
		panic("chain: WithRNG: nil rng")
	}

	return func(o *options) { o.rng = rng }
}

// WithID sets the chain identifier used in logs, metrics and errors.
// Panics on an empty id.
func WithID(id string) Option {
	if id == "" {
		panic("chain: WithID: empty id")
	}

	return func(o *options) { o.id = id }
}
