package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Params are the tuning constants of the simulation, per tick.
type Params struct {
	Gravity        float64 // added to Vel.Y every tick
	Jump           float64 // upward speed set by a jump
	Accel          float64 // added to Vel.X every tick while walking
	MaxSpeedX      float64 // horizontal speed cap
	GroundFriction float64 // Vel.X multiplier on the ground when not walking
	AirDrag        float64 // Vel.X multiplier in the air when not walking
	DeadZone       float64 // |Vel.X| below this snaps to zero
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		Gravity:        0.1,
		Jump:           0.85,
		Accel:          0.15,
		MaxSpeedX:      0.6,
		GroundFriction: 0.85,
		AirDrag:        0.99,
		DeadZone:       0.1,
	}
}

// Contacts records which sides the sweep collided with during a tick.
type Contacts uint8

const (
	ContactFloor Contacts = 1 << iota
	ContactCeiling
	ContactWallLeft
	ContactWallRight
)

// Has reports whether all contacts in c are present.
func (c Contacts) Has(o Contacts) bool {
	return c&o == o
}

// Simulator integrates a body against a tile world with a fixed tick.
type Simulator struct {
	params Params
}

// NewSimulator creates a simulator with the given tuning.
func NewSimulator(p Params) *Simulator {
	return &Simulator{params: p}
}

// Step advances the body by one tick.
//
// Movement is swept along the dominant velocity axis in unit probe steps.
// At every probe the four neighbouring tiles are tested against the
// direction of travel; the first probe that collides ends the sweep.
// The swept position is then checked once more as a whole, since a
// diagonal move can clear both neighbour tests and still end inside a
// corner tile. Afterwards horizontal acceleration or damping is applied,
// then gravity.
// Gravity is added even while grounded; the next tick's floor contact
// zeroes it again.
func (s *Simulator) Step(w *world.TileWorld, b *Body) Contacts {
	p := s.params
	var hit Contacts

	b.OnGround = false
	next := b.Pos.Add(b.Vel)

	steps := math.Max(math.Abs(b.Vel.X), math.Abs(b.Vel.Y))
	var unit Vec2
	if steps > 0 {
		unit = b.Vel.Scale(1 / steps)
	}

	for i := 0; i <= int(steps); i++ {
		probe := b.Pos.Add(unit.Scale(float64(i)))
		px, py := core.Floor(probe.X), core.Floor(probe.Y)
		collided := false

		if b.Vel.Y > 0 && w.SolidAt(px, core.Floor(probe.Y+1)) {
			next.Y = float64(py)
			b.Vel.Y = 0
			b.OnGround = true
			hit |= ContactFloor
			collided = true
		}
		if b.Vel.Y < 0 && probe.Y >= 1 && w.SolidAt(px, core.Floor(probe.Y-1)) {
			next.Y = float64(py)
			b.Vel.Y = 0
			hit |= ContactCeiling
			collided = true
		}
		if b.Vel.X < 0 && probe.X >= 1 && w.SolidAt(core.Floor(probe.X-1), py) {
			next.X = b.Pos.X
			b.Vel.X = 0
			hit |= ContactWallLeft
			collided = true
		}
		if b.Vel.X > 0 && w.SolidAt(core.Floor(probe.X+1), py) {
			next.X = b.Pos.X
			b.Vel.X = 0
			hit |= ContactWallRight
			collided = true
		}

		if collided {
			break
		}
	}

	next.X = clampX(next.X, w.Width())
	hit |= settle(w, b, &next)
	b.Pos = next

	s.applyHorizontal(b)
	b.Vel.Y += p.Gravity

	return hit
}

// settle keeps the body out of a solid landing tile. The horizontal
// component is dropped first, then the vertical one, then both.
func settle(w *world.TileWorld, b *Body, next *Vec2) Contacts {
	nx, ny := core.Floor(next.X), core.Floor(next.Y)
	if !w.SolidAt(nx, ny) {
		return 0
	}

	switch {
	case !w.SolidAt(core.Floor(b.Pos.X), ny):
		next.X = b.Pos.X
		hit := ContactWallLeft
		if b.Vel.X > 0 {
			hit = ContactWallRight
		}
		b.Vel.X = 0
		return hit
	case !w.SolidAt(nx, core.Floor(b.Pos.Y)):
		next.Y = b.Pos.Y
		hit := ContactCeiling
		if b.Vel.Y > 0 {
			b.OnGround = true
			hit = ContactFloor
		}
		b.Vel.Y = 0
		return hit
	default:
		*next = b.Pos
		b.Vel = Vec2{}
		return 0
	}
}

// applyHorizontal accelerates toward the walk intent or damps the
// horizontal speed, then enforces the speed cap and dead zone.
func (s *Simulator) applyHorizontal(b *Body) {
	p := s.params

	switch {
	case b.Walk != DirNone:
		b.Vel.X += float64(b.Walk) * p.Accel
	case b.OnGround:
		b.Vel.X *= p.GroundFriction
	default:
		b.Vel.X *= p.AirDrag
	}

	speed := math.Abs(b.Vel.X)
	if speed > p.MaxSpeedX {
		dir := float64(b.Walk)
		if b.Walk == DirNone {
			dir = math.Copysign(1, b.Vel.X)
		}
		b.Vel.X = dir * p.MaxSpeedX
	} else if speed < p.DeadZone {
		b.Vel.X = 0
	}
}

// Jump launches the body upward if it is standing on ground.
// It returns false (and does nothing) while airborne.
func (s *Simulator) Jump(b *Body) bool {
	if !b.OnGround {
		return false
	}
	b.Vel.Y = -s.params.Jump
	return true
}

// ToggleWalk updates the walk intent for a direction key press.
// Pressing the active direction again stops walking; any other
// direction becomes the new intent immediately.
func (s *Simulator) ToggleWalk(b *Body, dir Direction) {
	if dir == DirNone {
		return
	}
	if b.Walk == dir {
		b.Walk = DirNone
		return
	}
	b.Walk = dir
}

// clampX keeps x inside the hard world-edge walls [1, width-1].
func clampX(x float64, width int) float64 {
	return core.ClampF(x, 1, math.Max(1, float64(width-1)))
}
