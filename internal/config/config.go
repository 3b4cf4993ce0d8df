package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gorig/internal/attrs"
	"github.com/philipparndt/gorig/internal/axis"
	"github.com/philipparndt/gorig/internal/chain"
	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/models"
	"github.com/philipparndt/gorig/internal/naming"
)

// Precision bounds accepted in rig files
const (
	MinPrecision = 1
	MaxPrecision = 15
)

// Loader handles loading and validating rig description files
type Loader struct{}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a YAML rig description
func (l *Loader) Load(configPath string) (*models.Rig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	rig, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	// Export paths are relative to the config file
	if rig.Export != "" && !filepath.IsAbs(rig.Export) {
		absConfigDir, err := filepath.Abs(filepath.Dir(configPath))
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path of config directory: %w", err)
		}
		rig.Export = filepath.Join(absConfigDir, rig.Export)
	}

	return rig, nil
}

// Parse parses and validates a rig description held in memory
func (l *Loader) Parse(data []byte) (*models.Rig, error) {
	var rig models.Rig
	if err := yaml.Unmarshal(data, &rig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(&rig); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &rig, nil
}

// Validate checks if the rig description is well formed. Geometric
// requirements are checked when the chains are built.
func (l *Loader) Validate(rig *models.Rig) error {
	if rig.Precision != nil && (*rig.Precision < MinPrecision || *rig.Precision > MaxPrecision) {
		return fmt.Errorf("precision must be between %d and %d", MinPrecision, MaxPrecision)
	}

	if len(rig.Chains) == 0 {
		return fmt.Errorf("at least one chain must be defined")
	}

	for i, c := range rig.Chains {
		if err := l.validateChain(c, i); err != nil {
			return err
		}
	}
	return nil
}

// validateChain validates a single chain description
func (l *Loader) validateChain(c models.ChainSpec, index int) error {
	if c.Name == "" {
		return fmt.Errorf("chain %d: name is required", index)
	}
	prefix := fmt.Sprintf("chain %s", c.Name)

	if !naming.IsSide(c.Side) {
		return fmt.Errorf("%s: side must be one of %v", prefix, naming.Sides)
	}
	if c.StartIndex() < 0 {
		return fmt.Errorf("%s: start must not be negative", prefix)
	}

	mode, err := chain.ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if len(c.Positions) == 0 {
		return fmt.Errorf("%s: at least one position must be defined", prefix)
	}
	for j, p := range c.Positions {
		if len(p) != 3 {
			return fmt.Errorf("%s, position %d: expected 3 components, got %d", prefix, j, len(p))
		}
	}

	switch mode {
	case chain.Arbitrary:
		if len(c.Orientations) != len(c.Positions) {
			return fmt.Errorf("%s: %w: %w: arbitrary chains need one orientation per position (%d positions, %d orientations)",
				prefix, chain.ErrInput, chain.ErrLengthMismatch, len(c.Positions), len(c.Orientations))
		}
		for j, o := range c.Orientations {
			if len(o) != 3 {
				return fmt.Errorf("%s, orientation %d: expected 3 components, got %d", prefix, j, len(o))
			}
		}
	case chain.Linear:
		if len(c.TwistVector) != 3 {
			return fmt.Errorf("%s: linear chains need a twist_vector with 3 components", prefix)
		}
		fallthrough
	case chain.Planar:
		if _, _, err := axis.ParsePair(aimOrDefault(c), twistOrDefault(c)); err != nil {
			return fmt.Errorf("%s: %w", prefix, err)
		}
	}

	if c.ZeroOrientLast && mode != chain.Arbitrary {
		return fmt.Errorf("%s: zero_orient_last only applies to arbitrary chains", prefix)
	}

	if _, err := attrs.Resolve(c.Lock, c.Unlock); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	return nil
}

func aimOrDefault(c models.ChainSpec) string {
	if c.Aim == "" {
		return "+x"
	}
	return c.Aim
}

func twistOrDefault(c models.ChainSpec) string {
	if c.Twist == "" {
		return "+y"
	}
	return c.Twist
}

// PrecisionOf returns the rig precision or the default
func PrecisionOf(rig *models.Rig) int {
	if rig.Precision == nil {
		return geometry.DefaultPrecision
	}
	return *rig.Precision
}

// ChainJob is one chain ready to be handed to the chain builder
type ChainJob struct {
	Spec      models.ChainSpec
	Mode      chain.Mode
	Arbitrary chain.ArbitraryInput
	Linear    chain.LinearInput
	Planar    chain.PlanarInput
	Channels  []string
}

// ConvertToChainJobs converts a validated rig into builder inputs
func (l *Loader) ConvertToChainJobs(rig *models.Rig) ([]ChainJob, error) {
	var jobs []ChainJob
	for _, c := range rig.Chains {
		mode, err := chain.ParseMode(c.Mode)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", c.Name, err)
		}
		positions, err := vectors(c.Positions)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", c.Name, err)
		}
		channels, err := attrs.Resolve(c.Lock, c.Unlock)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", c.Name, err)
		}

		job := ChainJob{Spec: c, Mode: mode, Channels: channels}
		switch mode {
		case chain.Arbitrary:
			orients := make([]geometry.Euler, 0, len(c.Orientations))
			for j, o := range c.Orientations {
				e, err := geometry.EulerFromSlice(o)
				if err != nil {
					return nil, fmt.Errorf("chain %s, orientation %d: %w", c.Name, j, err)
				}
				orients = append(orients, e)
			}
			job.Arbitrary = chain.ArbitraryInput{
				Positions:      positions,
				Orientations:   orients,
				SkipLast:       c.SkipLast,
				ZeroOrientLast: c.ZeroOrientLast,
			}
		case chain.Linear:
			tv, err := geometry.VecFromSlice(c.TwistVector)
			if err != nil {
				return nil, fmt.Errorf("chain %s, twist_vector: %w", c.Name, err)
			}
			job.Linear = chain.LinearInput{
				Positions:   positions,
				Aim:         aimOrDefault(c),
				Twist:       twistOrDefault(c),
				TwistVector: &tv,
				SkipLast:    c.SkipLast,
			}
		case chain.Planar:
			job.Planar = chain.PlanarInput{
				Positions: positions,
				Aim:       aimOrDefault(c),
				Twist:     twistOrDefault(c),
				SkipLast:  c.SkipLast,
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func vectors(in [][]float64) ([]r3.Vec, error) {
	out := make([]r3.Vec, 0, len(in))
	for i, p := range in {
		v, err := geometry.VecFromSlice(p)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
