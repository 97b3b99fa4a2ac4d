// SPDX-License-Identifier: MIT

package mh

import (
	"errors"

	"github.com/katalvlaran/psimcmc/density"
)

var (
	// ErrNumericDomain reports a value outside the domain of the densities:
	// a non-positive Ψ component, a NaN acceptance ratio, a bad variance.
	// It is density.ErrNumericDomain, so errors.Is matches either name.
	ErrNumericDomain = density.ErrNumericDomain

	// ErrDimensionMismatch indicates Ψ, α or the proposal disagree on K.
	ErrDimensionMismatch = errors.New("mh: dimension mismatch")
)
