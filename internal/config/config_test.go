package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", fromYAML, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"negative jump", func(c *Config) { c.Physics.JumpImpulse = -1 }},
		{"zero accel", func(c *Config) { c.Physics.Accel = 0 }},
		{"zero max speed", func(c *Config) { c.Physics.MaxSpeedX = 0 }},
		{"friction above one", func(c *Config) { c.Physics.GroundFriction = 1.2 }},
		{"zero air drag", func(c *Config) { c.Physics.AirDrag = 0 }},
		{"dead zone above max", func(c *Config) { c.Physics.DeadZone = 1 }},
		{"inverted band", func(c *Config) { c.Viewport.ScrollLow, c.Viewport.ScrollHigh = 0.7, 0.3 }},
		{"band touches edge", func(c *Config) { c.Viewport.ScrollHigh = 1 }},
		{"zero tick", func(c *Config) { c.Loop.TickMS = 0 }},
		{"zero queue", func(c *Config) { c.Loop.QueueSize = 0 }},
		{"negative fall margin", func(c *Config) { c.Gameplay.FallMargin = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.2\nloop:\n  tick_ms: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %v, expected 0.2", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != Default().Physics.JumpImpulse {
		t.Errorf("JumpImpulse = %v, expected default", cfg.Physics.JumpImpulse)
	}
	if cfg.TickRate() != 40 {
		t.Errorf("TickRate() = %d, expected 40", cfg.TickRate())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() with broken YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() with invalid values = %v, expected ErrInvalidConfig", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()

	p := cfg.PhysicsParams()
	if p.Gravity != 0.1 || p.Jump != 0.85 || p.MaxSpeedX != 0.6 {
		t.Errorf("PhysicsParams() = %+v", p)
	}

	b := cfg.Band()
	if b.Low != 0.33 || b.High != 0.66 {
		t.Errorf("Band() = %+v, expected 0.33..0.66", b)
	}

	if cfg.TickRate() != 50 {
		t.Errorf("TickRate() = %d, expected 50", cfg.TickRate())
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", cfg.TickInterval())
	}
}

func TestApplyPreset(t *testing.T) {
	for _, preset := range Presets() {
		cfg := Default()
		if err := ApplyPreset(&cfg, preset); err != nil {
			t.Errorf("ApplyPreset(%q) error = %v", preset, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produces an invalid config: %v", preset, err)
		}
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg != Default() {
		t.Error("empty preset should leave the config untouched")
	}

	if err := ApplyPreset(&cfg, "moon"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyPreset(moon) = %v, expected ErrInvalidConfig", err)
	}

	snappy := Default()
	_ = ApplyPreset(&snappy, PresetSnappy)
	if snappy.Physics.Gravity <= Default().Physics.Gravity {
		t.Error("snappy preset should increase gravity")
	}
}
