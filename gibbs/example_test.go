package gibbs_test

import (
	"fmt"

	"github.com/katalvlaran/psimcmc/gibbs"
	"github.com/katalvlaran/psimcmc/isoform"
	"github.com/katalvlaran/psimcmc/sampling"
)

// ExampleSampler_Sweep resamples two reads that each fit a single isoform.
func ExampleSampler_Sweep() {
	m, _ := isoform.NewModel(isoform.Gene{IsoLens: []int{1253, 1172}, PartsPerIsoform: []int{3, 2}}, 40, 4)
	lpf := make([]float64, 2)
	_ = isoform.LogPsiFrag(lpf, []float64{0.5, 0.5}, m)

	reads := []isoform.Read{isoform.NewRead(1, 0), isoform.NewRead(0, 1)}
	assignments := []int{1, 0}
	if err := gibbs.New(isoform.NewFast(m)).Sweep(assignments, reads, lpf, sampling.NewRNG(1)); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(assignments)
	// Output: [0 1]
}
