// SPDX-License-Identifier: MIT

package density

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different lengths, e.g. x vs alpha
	// in DirichletLogPdf or theta vs mu in LogisticNormalLogPdf.
	ErrDimensionMismatch = errors.New("density: dimension mismatch")

	// ErrNumericDomain signals a log or division of a non-positive, NaN or
	// infinite value: alpha ≤ 0, x < 0, variance ≤ 0, a simplex point on or
	// outside the boundary.
	ErrNumericDomain = errors.New("density: value outside numeric domain")
)
