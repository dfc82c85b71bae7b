package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/atomvis-go/scene"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DensityFactor != 1.0 {
		t.Errorf("density factor = %v, want 1.0", cfg.DensityFactor)
	}
	if !cfg.Glow || !cfg.ShowLabels {
		t.Error("glow and labels should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".atomvis.yml")
	data := `density_factor: 0.5
color_scheme: element
glow: false
window_width: 1920
window_height: 1080
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DensityFactor != 0.5 {
		t.Errorf("density factor = %v, want 0.5", cfg.DensityFactor)
	}
	if cfg.ColorScheme != "element" {
		t.Errorf("color scheme = %q, want element", cfg.ColorScheme)
	}
	if cfg.Glow {
		t.Error("glow should be off")
	}
	// Untouched keys keep their defaults.
	if cfg.NucleusScale != 1.0 {
		t.Errorf("nucleus scale = %v, want default 1.0", cfg.NucleusScale)
	}
	if cfg.WindowWidth != 1920 || cfg.WindowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".atomvis.yml")
	if err := os.WriteFile(path, []byte("density_factor: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ATOMVIS_DENSITY_FACTOR", "2.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DensityFactor != 2.5 {
		t.Errorf("density factor = %v, want env override 2.5", cfg.DensityFactor)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero density", func(c *Config) { c.DensityFactor = 0 }},
		{"negative nucleus scale", func(c *Config) { c.NucleusScale = -1 }},
		{"negative speed", func(c *Config) { c.AnimationSpeed = -0.1 }},
		{"unknown scheme", func(c *Config) { c.ColorScheme = "neon" }},
		{"zero window", func(c *Config) { c.WindowWidth = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	cfg := DefaultConfig()
	cfg.DensityFactor = 0.75
	cfg.ColorScheme = string(scene.SchemeElement)
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DensityFactor != 0.75 || loaded.ColorScheme != string(scene.SchemeElement) {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestStateConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DensityFactor = 0.3
	cfg.ShowLabels = false

	state := cfg.State()
	if state.CloudDensityFactor != 0.3 {
		t.Errorf("state density = %v, want 0.3", state.CloudDensityFactor)
	}
	if state.ShowLabels {
		t.Error("state labels should be off")
	}
	if state.Mode != scene.ModeAtom {
		t.Errorf("state mode = %q, want atom default", state.Mode)
	}
}
