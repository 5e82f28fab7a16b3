// Package config provides YAML-based tuning for the simulation, the
// viewport and the tick loop.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/viewport"
)

// Config contains all tunable settings.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Viewport ViewportConfig `yaml:"viewport"`
	Loop     LoopConfig     `yaml:"loop"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	Accel          float64 `yaml:"accel"`
	MaxSpeedX      float64 `yaml:"max_speed_x"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirDrag        float64 `yaml:"air_drag"`
	DeadZone       float64 `yaml:"dead_zone"`
}

// ViewportConfig defines the scrolling hysteresis band.
type ViewportConfig struct {
	ScrollLow  float64 `yaml:"scroll_low"`
	ScrollHigh float64 `yaml:"scroll_high"`
}

// LoopConfig defines frame pacing and input buffering.
type LoopConfig struct {
	TickMS    int `yaml:"tick_ms"`
	QueueSize int `yaml:"queue_size"`
}

// GameplayConfig defines session rules outside the simulator.
type GameplayConfig struct {
	RespawnOnFall bool `yaml:"respawn_on_fall"`
	FallMargin    int  `yaml:"fall_margin"`
}

// PhysicsParams converts the physics section to simulator parameters.
func (c Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:        c.Physics.Gravity,
		Jump:           c.Physics.JumpImpulse,
		Accel:          c.Physics.Accel,
		MaxSpeedX:      c.Physics.MaxSpeedX,
		GroundFriction: c.Physics.GroundFriction,
		AirDrag:        c.Physics.AirDrag,
		DeadZone:       c.Physics.DeadZone,
	}
}

// Band converts the viewport section to a hysteresis band.
func (c Config) Band() viewport.Band {
	return viewport.Band{Low: c.Viewport.ScrollLow, High: c.Viewport.ScrollHigh}
}

// TickRate returns ticks per second derived from tick_ms.
func (c Config) TickRate() int {
	if c.Loop.TickMS <= 0 {
		return 50
	}
	return 1000 / c.Loop.TickMS
}

// TickInterval returns the wall-clock duration of one tick.
func (c Config) TickInterval() time.Duration {
	if c.Loop.TickMS <= 0 {
		return 20 * time.Millisecond
	}
	return time.Duration(c.Loop.TickMS) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the settings describe a playable simulation.
func (c Config) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %v", ErrInvalidConfig, p.Gravity)
	case p.JumpImpulse <= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be positive, got %v", ErrInvalidConfig, p.JumpImpulse)
	case p.Accel <= 0:
		return fmt.Errorf("%w: physics.accel must be positive, got %v", ErrInvalidConfig, p.Accel)
	case p.MaxSpeedX <= 0:
		return fmt.Errorf("%w: physics.max_speed_x must be positive, got %v", ErrInvalidConfig, p.MaxSpeedX)
	case p.GroundFriction <= 0 || p.GroundFriction > 1:
		return fmt.Errorf("%w: physics.ground_friction must be in (0, 1], got %v", ErrInvalidConfig, p.GroundFriction)
	case p.AirDrag <= 0 || p.AirDrag > 1:
		return fmt.Errorf("%w: physics.air_drag must be in (0, 1], got %v", ErrInvalidConfig, p.AirDrag)
	case p.DeadZone < 0 || p.DeadZone >= p.MaxSpeedX:
		return fmt.Errorf("%w: physics.dead_zone must be in [0, max_speed_x), got %v", ErrInvalidConfig, p.DeadZone)
	}

	v := c.Viewport
	if v.ScrollLow <= 0 || v.ScrollHigh >= 1 || v.ScrollLow >= v.ScrollHigh {
		return fmt.Errorf("%w: viewport band must satisfy 0 < scroll_low < scroll_high < 1, got %v..%v",
			ErrInvalidConfig, v.ScrollLow, v.ScrollHigh)
	}

	if c.Loop.TickMS <= 0 || c.Loop.TickMS > 1000 {
		return fmt.Errorf("%w: loop.tick_ms must be in (0, 1000], got %d", ErrInvalidConfig, c.Loop.TickMS)
	}
	if c.Loop.QueueSize <= 0 {
		return fmt.Errorf("%w: loop.queue_size must be positive, got %d", ErrInvalidConfig, c.Loop.QueueSize)
	}
	if c.Gameplay.FallMargin < 0 {
		return fmt.Errorf("%w: gameplay.fall_margin must not be negative, got %d", ErrInvalidConfig, c.Gameplay.FallMargin)
	}
	return nil
}
