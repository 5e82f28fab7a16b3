package config

import "fmt"

// Preset is a named feel for the physics tuning.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFloaty  Preset = "floaty"
	PresetSnappy  Preset = "snappy"
)

// Presets lists the known presets.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetFloaty, PresetSnappy}
}

// ApplyPreset modifies the physics section for a preset.
// An empty preset and "classic" leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "", PresetClassic:
		return nil
	case PresetFloaty:
		cfg.Physics.Gravity *= 0.6
		cfg.Physics.JumpImpulse *= 0.8
		cfg.Physics.AirDrag = 1.0
	case PresetSnappy:
		cfg.Physics.Gravity *= 1.5
		cfg.Physics.JumpImpulse *= 1.2
		cfg.Physics.Accel *= 2
		cfg.Physics.GroundFriction = 0.6
	default:
		return fmt.Errorf("%w: unknown preset %q (known: %v)", ErrInvalidConfig, preset, Presets())
	}
	return nil
}
