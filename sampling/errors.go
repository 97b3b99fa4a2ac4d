// SPDX-License-Identifier: MIT

package sampling

import "errors"

var (
	// ErrInvalidDistribution is returned when a probability vector has a
	// negative, NaN or infinite entry, or when all of its entries are zero.
	ErrInvalidDistribution = errors.New("sampling: invalid probability vector")

	// ErrDimensionMismatch indicates that output buffers or operands disagree
	// in length with the distribution they describe.
	ErrDimensionMismatch = errors.New("sampling: dimension mismatch")

	// ErrNegativeDraws is returned when a multinomial is asked for numDraws < 0.
	ErrNegativeDraws = errors.New("sampling: negative number of draws")

	// ErrNotPositiveDefinite signals that a covariance matrix has no Cholesky factor.
	ErrNotPositiveDefinite = errors.New("sampling: covariance is not positive definite")
)
