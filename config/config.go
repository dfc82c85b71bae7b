// Package config loads viewer defaults from an optional YAML file and
// ATOMVIS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/atomvis-go/scene"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".atomvis.yml"

// Config holds the persistent viewer defaults. Command-line flags
// override these per invocation.
type Config struct {
	DensityFactor  float64 `yaml:"density_factor" koanf:"density_factor"`
	NucleusScale   float64 `yaml:"nucleus_scale" koanf:"nucleus_scale"`
	AnimationSpeed float64 `yaml:"animation_speed" koanf:"animation_speed"`
	ColorScheme    string  `yaml:"color_scheme" koanf:"color_scheme"`
	ShowLabels     bool    `yaml:"show_labels" koanf:"show_labels"`
	Glow           bool    `yaml:"glow" koanf:"glow"`
	WindowWidth    int     `yaml:"window_width" koanf:"window_width"`
	WindowHeight   int     `yaml:"window_height" koanf:"window_height"`
}

// DefaultConfig returns the defaults used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		DensityFactor:  1.0,
		NucleusScale:   1.0,
		AnimationSpeed: 1.0,
		ColorScheme:    string(scene.SchemeHeatmap),
		ShowLabels:     true,
		Glow:           true,
		WindowWidth:    1280,
		WindowHeight:   800,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ATOMVIS_*). A missing file is not an
// error; the defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// ATOMVIS_DENSITY_FACTOR -> density_factor, etc.
	if err := k.Load(env.Provider("ATOMVIS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ATOMVIS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSchemes is the set of recognized color scheme values.
var validSchemes = map[string]bool{
	string(scene.SchemeHeatmap): true,
	string(scene.SchemeElement): true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.DensityFactor <= 0 {
		return fmt.Errorf("density_factor must be positive")
	}
	if c.NucleusScale <= 0 {
		return fmt.Errorf("nucleus_scale must be positive")
	}
	if c.AnimationSpeed < 0 {
		return fmt.Errorf("animation_speed must be non-negative")
	}
	if !validSchemes[c.ColorScheme] {
		return fmt.Errorf("invalid color_scheme %q: must be one of heatmap, element", c.ColorScheme)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("window dimensions must be positive")
	}
	return nil
}

// State converts the config into an initial visualization state.
func (c *Config) State() scene.VisualizationState {
	state := scene.DefaultState()
	state.CloudDensityFactor = c.DensityFactor
	state.NucleusScaleFactor = c.NucleusScale
	state.AnimationSpeedFactor = c.AnimationSpeed
	state.ColorScheme = scene.ColorScheme(c.ColorScheme)
	state.ShowLabels = c.ShowLabels
	state.GlowEnabled = c.Glow
	return state
}
