// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/psimcmc/density"
	"github.com/katalvlaran/psimcmc/isoform"
)

// Default sampler settings.
const (
	DefaultReadLen          = 36
	DefaultOverhangLen      = 1
	DefaultIterations       = 5000
	DefaultBurnIn           = 500
	DefaultThinning         = 10
	DefaultProposalVariance = 0.05
)

// Config holds every knob of a single chain. It decodes from YAML:
//
//	read_len: 40
//	overhang_len: 4
//	iterations: 5000
//	burn_in: 500
//	thinning: 10
//	proposal_variance: 0.05
//	seed: 42
//	initial_psi: [0.5, 0.5]
type Config struct {
	// ReadLen is the fixed read length in bases.
	ReadLen int `yaml:"read_len" json:"read_len" validate:"gte=1"`

	// OverhangLen is the minimum junction overhang; 1 disables the correction.
	OverhangLen int `yaml:"overhang_len" json:"overhang_len" validate:"gte=0"`

	// Iterations is the total number of Gibbs+MH iterations, burn-in included.
	Iterations int `yaml:"iterations" json:"iterations" validate:"gte=1"`

	// BurnIn iterations are run but not recorded.
	BurnIn int `yaml:"burn_in" json:"burn_in" validate:"gte=0,ltfield=Iterations"`

	// Thinning records every Thinning-th post burn-in state.
	Thinning int `yaml:"thinning" json:"thinning" validate:"gte=1"`

	// ProposalVariance is σ² of the logistic-normal random walk.
	ProposalVariance float64 `yaml:"proposal_variance" json:"proposal_variance" validate:"gt=0"`

	// ClampEpsilon floors proposed Ψ components.
	ClampEpsilon float64 `yaml:"clamp_epsilon" json:"clamp_epsilon" validate:"gte=0,lt=0.5"`

	// PriorAlpha is the Dirichlet concentration; empty means all ones.
	PriorAlpha []float64 `yaml:"prior_alpha,omitempty" json:"prior_alpha,omitempty" validate:"omitempty,dive,gt=0"`

	// Seed seeds the chain RNG; 0 selects a fixed default.
	Seed uint64 `yaml:"seed" json:"seed"`

	// InitialPsi is the starting Ψ; empty means uniform. Renormalized on use.
	InitialPsi []float64 `yaml:"initial_psi,omitempty" json:"initial_psi,omitempty" validate:"omitempty,dive,gt=0"`

	// KeepAssignments stores a copy of the assignment vector in every Sample.
	KeepAssignments bool `yaml:"keep_assignments" json:"keep_assignments"`

	// Policy names the read-compatibility policy ("overhang" or "uniform").
	Policy string `yaml:"policy" json:"policy" validate:"omitempty,oneof=overhang uniform"`

	// Scorer names the scorer implementation ("fast" or "reference").
	Scorer string `yaml:"scorer" json:"scorer" validate:"omitempty,oneof=fast reference"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		ReadLen:          DefaultReadLen,
		OverhangLen:      DefaultOverhangLen,
		Iterations:       DefaultIterations,
		BurnIn:           DefaultBurnIn,
		Thinning:         DefaultThinning,
		ProposalVariance: DefaultProposalVariance,
		ClampEpsilon:     density.DefaultClampEpsilon,
		Policy:           isoform.PolicyOverhang,
		Scorer:           isoform.ScorerFast,
	}
}

var configValidate = validator.New()

// Validate checks field constraints. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidConfig, f.Namespace(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates the
// result. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}
