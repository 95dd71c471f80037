// Package config loads the run configuration of the spectrum tool.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/emission"
	"github.com/sgostarter/libhawking/grid"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Number accepts plain YAML numbers as well as numeric strings such as "1e15".
type Number float64

func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	f, err := cast.ToFloat64E(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*n = Number(f)

	return nil
}

// Config represents a complete spectrum run
type Config struct {
	Holes       []HoleConfig      `yaml:"holes"`
	Input       GridConfig        `yaml:"input"`
	Output      GridConfig        `yaml:"output"`
	Targets     []TargetConfig    `yaml:"targets"`
	Integration IntegrationConfig `yaml:"integration"`
	Tables      TablesConfig      `yaml:"tables"`
	Storage     StorageConfig     `yaml:"storage"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// HoleConfig is one source instance. Mass is in grams.
type HoleConfig struct {
	Mass Number `yaml:"mass"`
	Spin Number `yaml:"spin"`
}

// GridConfig describes an energy grid in GeV
type GridConfig struct {
	Min    Number `yaml:"min"`
	Max    Number `yaml:"max"`
	Points int    `yaml:"points"`
	// Linear spacing instead of logarithmic
	Linear bool `yaml:"linear"`
}

// TargetConfig names an observed species and the regime tables feeding it, lowest
// energy first. Thresholds has one entry less than Regimes.
type TargetConfig struct {
	Particle   string   `yaml:"particle"`
	Regimes    []string `yaml:"regimes"`
	Thresholds []Number `yaml:"thresholds"`
}

type IntegrationConfig struct {
	Steps   int `yaml:"steps"`
	Workers int `yaml:"workers"`
	// Holes processed at once
	Parallel int `yaml:"parallel"`
	// How long a built rate cache is kept for reuse
	CacheExpiration time.Duration `yaml:"cacheExpiration"`
}

type TablesConfig struct {
	Root  string   `yaml:"root"`
	Spins []string `yaml:"spins"`
}

// StorageConfig selects where spectra go: "file" or "redis"
type StorageConfig struct {
	Type     string `yaml:"type"`
	Root     string `yaml:"root"`
	FileName string `yaml:"fileName"`
	Pretty   bool   `yaml:"pretty"`
	RedisDSN string `yaml:"redisDSN"`
	PreKey   string `yaml:"preKey"`
}

type MetricsConfig struct {
	// Empty disables the /metrics listener
	Address string `yaml:"address"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Holes: []HoleConfig{
			{Mass: 1e15},
		},
		Input: GridConfig{
			Min:    1e-6,
			Max:    1e5,
			Points: 200,
		},
		Output: GridConfig{
			Min:    1e-6,
			Max:    1e5,
			Points: 100,
		},
		Targets: []TargetConfig{
			{
				Particle:   "photon",
				Regimes:    []string{"photon_low", "photon_high"},
				Thresholds: []Number{5},
			},
		},
		Integration: IntegrationConfig{
			Steps:           100,
			Parallel:        1,
			CacheExpiration: 10 * time.Minute,
		},
		Tables: TablesConfig{
			Root:  "tables",
			Spins: []string{"spin_0", "spin_1_2", "spin_1", "spin_2"},
		},
		Storage: StorageConfig{
			Type:     "file",
			Root:     "results",
			FileName: "spectra.json",
			PreKey:   "hawking",
		},
	}
}

func (gc GridConfig) validate(name string) error {
	lo, hi := float64(gc.Min), float64(gc.Max)

	if math.IsNaN(lo) || math.IsInf(hi, 0) || !(hi > lo) {
		return fmt.Errorf("%w: %s range [%v, %v]", ErrInvalidConfig, name, lo, hi)
	}

	if !gc.Linear && !(lo > 0) {
		return fmt.Errorf("%w: %s log grid needs min > 0", ErrInvalidConfig, name)
	}

	if gc.Points < 2 {
		return fmt.Errorf("%w: %s needs at least 2 points", ErrInvalidConfig, name)
	}

	return nil
}

// Axis expands the grid description into its points.
func (gc GridConfig) Axis() (grid.Axis, error) {
	if gc.Points < 2 {
		return grid.Axis{}, grid.ErrInsufficientGrid
	}

	points := make([]float64, gc.Points)

	if gc.Linear {
		floats.Span(points, float64(gc.Min), float64(gc.Max))
	} else {
		floats.LogSpan(points, float64(gc.Min), float64(gc.Max))
	}

	return grid.NewAxis(points)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Holes) == 0 {
		return fmt.Errorf("%w: no holes", ErrInvalidConfig)
	}

	for _, h := range c.Holes {
		if err := h.BlackHole().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if err := c.Input.validate("input"); err != nil {
		return err
	}

	if err := c.Output.validate("output"); err != nil {
		return err
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("%w: no targets", ErrInvalidConfig)
	}

	for _, target := range c.Targets {
		if _, err := catalog.ParseParticle(target.Particle); err != nil {
			return fmt.Errorf("%w: target %w", ErrInvalidConfig, err)
		}

		if len(target.Regimes) != len(target.Thresholds)+1 {
			return fmt.Errorf("%w: target %s has %d regimes and %d thresholds", ErrInvalidConfig,
				target.Particle, len(target.Regimes), len(target.Thresholds))
		}
	}

	if _, err := c.SpinClasses(); err != nil {
		return err
	}

	if c.Integration.Steps < 1 {
		return fmt.Errorf("%w: integration.steps must be positive", ErrInvalidConfig)
	}

	switch c.Storage.Type {
	case "file":
	case "redis":
		if c.Storage.RedisDSN == "" {
			return fmt.Errorf("%w: storage.redisDSN is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage type %q", ErrInvalidConfig, c.Storage.Type)
	}

	return nil
}

func (h HoleConfig) BlackHole() emission.BlackHole {
	return emission.BlackHole{
		MassGrams: float64(h.Mass),
		Spin:      float64(h.Spin),
	}
}

func (c *Config) BlackHoles() []emission.BlackHole {
	holes := make([]emission.BlackHole, 0, len(c.Holes))
	for _, h := range c.Holes {
		holes = append(holes, h.BlackHole())
	}

	return holes
}

func (c *Config) SpinClasses() ([]catalog.SpinClass, error) {
	spins := make([]catalog.SpinClass, 0, len(c.Tables.Spins))

	for _, s := range c.Tables.Spins {
		spin, err := catalog.ParseSpinClass(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		spins = append(spins, spin)
	}

	return spins, nil
}

func (tc TargetConfig) ThresholdValues() []float64 {
	vs := make([]float64, len(tc.Thresholds))
	for idx, v := range tc.Thresholds {
		vs[idx] = float64(v)
	}

	return vs
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
