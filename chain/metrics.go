// SPDX-License-Identifier: MIT

package chain

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors updated by running chains.
// One Metrics may be shared by any number of chains; series are labelled by
// chain id.
type Metrics struct {
	iterations *prometheus.CounterVec
	proposals  *prometheus.CounterVec
	accepted   *prometheus.CounterVec
	failures   *prometheus.CounterVec
	psi        *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		iterations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "psimcmc_chain_iterations_total",
			Help: "Completed Gibbs+MH iterations",
		}, []string{"chain"}),
		proposals: f.NewCounterVec(prometheus.CounterOpts{
			Name: "psimcmc_mh_proposals_total",
			Help: "Metropolis-Hastings proposals evaluated",
		}, []string{"chain"}),
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "psimcmc_mh_accepted_total",
			Help: "Metropolis-Hastings proposals accepted",
		}, []string{"chain"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "psimcmc_chain_failures_total",
			Help: "Chains aborted, by failing step",
		}, []string{"chain", "step"}),
		psi: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "psimcmc_chain_psi",
			Help: "Current Psi per isoform",
		}, []string{"chain", "isoform"}),
	}
}

func (m *Metrics) observe(chainID string, psi []float64, accepted bool) {
	m.iterations.WithLabelValues(chainID).Inc()
	m.proposals.WithLabelValues(chainID).Inc()
	if accepted {
		m.accepted.WithLabelValues(chainID).Inc()
	}
	for i, v := range psi {
		m.psi.WithLabelValues(chainID, strconv.Itoa(i)).Set(v)
	}
}

func (m *Metrics) fail(chainID, step string) {
	m.failures.WithLabelValues(chainID, step).Inc()
}
