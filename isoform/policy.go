// SPDX-License-Identifier: MIT

package isoform

// Policy decides which reads an isoform can explain and over how many start
// positions. It is the pluggable read-compatibility predicate of the model:
// alternative effective-length corrections are validated against reference
// outputs by swapping the Policy, not by editing the scorers.
//
// Implementations must be pure and safe for concurrent use.
type Policy interface {
	// Name identifies the policy in configs and logs.
	Name() string

	// Compatible reports whether read r may be assigned to isoform iso.
	Compatible(r Read, iso int) bool

	// Positions returns the number of start positions at which a read of
	// length readLen supports isoform iso. A result ≤ 0 makes every read
	// infeasible for that isoform.
	Positions(g *Gene, iso, readLen, overhangLen int) int
}

// Policy names accepted by PolicyByName.
const (
	PolicyOverhang = "overhang"
	PolicyUniform  = "uniform"
)

// OverhangPolicy is the default predicate: compatibility comes from the read
// flags, and each of the parts−1 junctions of an isoform removes
// 2·(overhangLen−1) start positions, those whose read would cover the junction
// by fewer than overhangLen bases on one side:
//
//	positions = (isoLen − readLen + 1) − 2·(overhangLen − 1)·(parts − 1)
//
// The formula applies unguarded: overhangLen 1 removes nothing and
// overhangLen 0 adds 2·(parts − 1) positions.
type OverhangPolicy struct{}

// Name implements Policy.
func (OverhangPolicy) Name() string { return PolicyOverhang }

// Compatible implements Policy.
func (OverhangPolicy) Compatible(r Read, iso int) bool { return r.Compatible(iso) }

// Positions implements Policy.
func (OverhangPolicy) Positions(g *Gene, iso, readLen, overhangLen int) int {
	excluded := 2 * (overhangLen - 1) * (g.PartsPerIsoform[iso] - 1)

	return g.ScaledLen(iso, readLen) - excluded
}

// UniformPolicy ignores junction structure: every start position counts.
type UniformPolicy struct{}

// Name implements Policy.
func (UniformPolicy) Name() string { return PolicyUniform }

// Compatible implements Policy.
func (UniformPolicy) Compatible(r Read, iso int) bool { return r.Compatible(iso) }

// Positions implements Policy.
func (UniformPolicy) Positions(g *Gene, iso, readLen, _ int) int {
	return g.ScaledLen(iso, readLen)
}

// PolicyByName resolves a configured policy name; "" selects the default.
// The second result is false for unknown names.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", PolicyOverhang:
		return OverhangPolicy{}, true
	case PolicyUniform:
		return UniformPolicy{}, true
	default:
		return nil, false
	}
}
