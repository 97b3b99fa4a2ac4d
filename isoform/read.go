// SPDX-License-Identifier: MIT

package isoform

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxIsoforms is the widest gene a Read bitmask can describe.
const MaxIsoforms = 32

// Read is a read's isoform-compatibility vector packed into a bitmask:
// bit i is set iff the read is structurally compatible with isoform i.
//
// For two isoforms the classic rows are
//
//	[1,0] inclusion-only   → NewRead(1, 0)
//	[0,1] exclusion-only   → NewRead(0, 1)
//	[1,1] common           → NewRead(1, 1)
type Read uint32

// NewRead packs a 0/1 compatibility row into a Read. Any non-zero flag counts
// as compatible. Panics if more than MaxIsoforms flags are given.
func NewRead(flags ...int) Read {
	if len(flags) > MaxIsoforms {
		panic(fmt.Sprintf("isoform: NewRead: %d flags exceed MaxIsoforms=%d", len(flags), MaxIsoforms))
	}

	var r Read
	for i, f := range flags {
		if f != 0 {
			r |= 1 << uint(i)
		}
	}

	return r
}

// ReadsFromRows converts a K-column 0/1 matrix (one row per read) into Reads.
//
// Errors:
//   - ErrInvalidRead if a row has a length other than k or holds values other than 0/1.
func ReadsFromRows(rows [][]int, k int) ([]Read, error) {
	if k < 1 || k > MaxIsoforms {
		return nil, fmt.Errorf("ReadsFromRows: k=%d: %w", k, ErrInvalidRead)
	}

	reads := make([]Read, len(rows))
	for n, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("ReadsFromRows: read %d has %d flags, want %d: %w", n, len(row), k, ErrInvalidRead)
		}
		for _, f := range row {
			if f != 0 && f != 1 {
				return nil, fmt.Errorf("ReadsFromRows: read %d flag %d: %w", n, f, ErrInvalidRead)
			}
		}
		reads[n] = NewRead(row...)
	}

	return reads, nil
}

// Compatible reports whether the read carries the flag of isoform iso.
// Out-of-range indices are never compatible.
func (r Read) Compatible(iso int) bool {
	if iso < 0 || iso >= MaxIsoforms {
		return false
	}

	return r&(1<<uint(iso)) != 0
}

// NumCompatible returns how many isoforms the read is compatible with.
func (r Read) NumCompatible() int { return bits.OnesCount32(uint32(r)) }

// Flags unpacks the first k flags as a 0/1 row.
func (r Read) Flags(k int) []int {
	out := make([]int, k)
	for i := range out {
		if r.Compatible(i) {
			out[i] = 1
		}
	}

	return out
}

// Format renders the first k flags as "[1,0]".
func (r Read) Format(k int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < k; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if r.Compatible(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
