// Package config loads a declarative generator description — groups of
// bodies with randomized mass/position/velocity ranges, optionally
// rotated and translated — and expands it into the concrete body
// records the simulation core consumes. Per spec.md §6, the core never
// sees anything but fully materialized {id, mass, position, velocity}
// records; this package is the boundary that produces them.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/johnxnguyen/newton/field"
)

// Params mirrors the simulation parameters spec.md §6 exposes to
// config: G, an optional convenience SolarMass, MinDist, MaxDist and
// Theta. Zero fields fall back to field.DefaultParams.
type Params struct {
	G         float64 `yaml:"g"`
	SolarMass float64 `yaml:"solar_mass"`
	MinDist   float64 `yaml:"min_dist"`
	MaxDist   float64 `yaml:"max_dist"`
	Theta     float64 `yaml:"theta"`
}

// Group describes one batch of generated bodies: Count bodies scattered
// over the annulus [MinDist, MaxDist] from the origin with uniformly
// random angle, each given tangential velocity Tangential, then
// optionally rotated by Rotation radians and translated by Center.
type Group struct {
	Count      int        `yaml:"count"`
	MassMin    float64    `yaml:"mass_min"`
	MassMax    float64    `yaml:"mass_max"`
	MinDist    float64    `yaml:"min_dist"`
	MaxDist    float64    `yaml:"max_dist"`
	Tangential float64    `yaml:"tangential_velocity"`
	Rotation   float64    `yaml:"rotation"`
	Center     [2]float64 `yaml:"center"`
	Seed       int64      `yaml:"seed"`
}

// Document is the top-level generator description.
type Document struct {
	Params Params  `yaml:"params"`
	Groups []Group `yaml:"groups"`
}

// Load reads the YAML document at path via viper (for its config-path
// resolution) and decodes it into a typed Document via yaml.v3, the
// two-step round trip used because viper.Unmarshal binds by
// mapstructure tag, not yaml tag.
func Load(path string, logger *zap.Logger) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w: %v", path, ErrConfigInvalid, err)
	}

	raw := map[string]interface{}{}
	if err := vp.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("config: unmarshal %q: %w: %v", path, ErrConfigInvalid, err)
	}

	spec, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("config: remarshal %q: %w: %v", path, ErrConfigInvalid, err)
	}

	var doc Document
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return nil, fmt.Errorf("config: decode %q: %w: %v", path, ErrConfigInvalid, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	logger.Info("loaded config", zap.String("path", path), zap.Int("groups", len(doc.Groups)))
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Groups) == 0 {
		return fmt.Errorf("config: %w: no groups defined", ErrConfigInvalid)
	}
	for i, g := range d.Groups {
		if g.Count <= 0 {
			return fmt.Errorf("config: group %d: %w: count must be positive", i, ErrConfigInvalid)
		}
		if g.MassMin <= 0 || g.MassMax < g.MassMin {
			return fmt.Errorf("config: group %d: %w: mass range invalid", i, ErrConfigInvalid)
		}
		if g.MinDist < 0 || g.MaxDist < g.MinDist {
			return fmt.Errorf("config: group %d: %w: radial range invalid", i, ErrConfigInvalid)
		}
	}
	return nil
}

// FieldParams returns the simulation parameters to construct the
// Field with, falling back to field.DefaultParams for any zero field.
func (d *Document) FieldParams() field.Params {
	defaults := field.DefaultParams()
	p := d.Params

	out := defaults
	if p.G != 0 {
		out.G = p.G
	}
	if p.MinDist != 0 {
		out.MinDist = p.MinDist
	}
	if p.MaxDist != 0 {
		out.MaxDist = p.MaxDist
	}
	if p.Theta != 0 {
		out.Theta = p.Theta
	}
	return out
}
