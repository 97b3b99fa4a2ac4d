// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("chain: invalid config")

// Step names reported in IterationError.
const (
	StepInit  = "init"
	StepGibbs = "gibbs"
	StepMH    = "mh"
)

// IterationError identifies the chain, iteration and step that failed.
// The chain is aborted; no retry is attempted.
type IterationError struct {
	ChainID   string
	Iteration int
	Step      string
	Err       error
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("chain %s: iteration %d: %s: %v", e.ChainID, e.Iteration, e.Step, e.Err)
}

func (e *IterationError) Unwrap() error { return e.Err }
