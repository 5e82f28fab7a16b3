package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/viewport"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic physics tuning
// and the default scroll band. It matches the embedded
// defaults/platformer.yaml.
func Default() Config {
	p := physics.DefaultParams()
	band := viewport.DefaultBand()
	return Config{
		Physics: PhysicsConfig{
			Gravity:        p.Gravity,
			JumpImpulse:    p.Jump,
			Accel:          p.Accel,
			MaxSpeedX:      p.MaxSpeedX,
			GroundFriction: p.GroundFriction,
			AirDrag:        p.AirDrag,
			DeadZone:       p.DeadZone,
		},
		Viewport: ViewportConfig{
			ScrollLow:  band.Low,
			ScrollHigh: band.High,
		},
		Loop: LoopConfig{
			TickMS:    20,
			QueueSize: core.DefaultQueueSize,
		},
		Gameplay: GameplayConfig{
			RespawnOnFall: true,
			FallMargin:    5,
		},
	}
}
