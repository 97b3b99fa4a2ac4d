// SPDX-License-Identifier: MIT

package isoform

import "errors"

var (
	// ErrDimensionMismatch indicates that reads, assignments or per-isoform
	// vectors disagree in length.
	ErrDimensionMismatch = errors.New("isoform: dimension mismatch")

	// ErrIsoformOutOfRange is returned for an assignment outside [0, K).
	ErrIsoformOutOfRange = errors.New("isoform: isoform index out of range")

	// ErrInvalidGene indicates malformed gene metadata: K < 2, K > MaxIsoforms,
	// non-positive lengths or part counts.
	ErrInvalidGene = errors.New("isoform: invalid gene metadata")

	// ErrInfeasibleIsoform signals an isoform shorter than the read length
	// (scaled length ≤ 0).
	ErrInfeasibleIsoform = errors.New("isoform: isoform infeasible for read length")

	// ErrInvalidRead is returned for a compatibility row that is not 0/1 or is
	// wider than the gene.
	ErrInvalidRead = errors.New("isoform: invalid read compatibility vector")
)
