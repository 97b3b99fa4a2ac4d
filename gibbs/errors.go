// SPDX-License-Identifier: MIT

package gibbs

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleRead is returned for a read that no feasible isoform admits.
	ErrIncompatibleRead = errors.New("gibbs: read compatible with no feasible isoform")

	// ErrDimensionMismatch indicates reads, assignments and log_psi_frag disagree in length.
	ErrDimensionMismatch = errors.New("gibbs: dimension mismatch")
)

// ReadError pinpoints the read that stopped a sweep.
type ReadError struct {
	Index int
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("gibbs: read %d: %v", e.Index, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
