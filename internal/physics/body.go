// Package physics advances the controllable body through a tile world.
package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Vec2 is a 2D vector in tile units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Direction is a horizontal walk direction.
type Direction int8

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Body is the kinematic state of the single controllable entity.
// Y grows downward, matching row order in the level grid.
type Body struct {
	Pos      Vec2
	Vel      Vec2
	OnGround bool      // set only for the tick right after a downward collision
	Walk     Direction // persistent walk intent, DirNone when standing
}

// NewBody creates a body at rest at the given spawn cell.
func NewBody(x, y int) Body {
	return Body{Pos: Vec2{X: float64(x), Y: float64(y)}}
}

// Cell returns the integer tile the body occupies.
func (b Body) Cell() (int, int) {
	return core.Floor(b.Pos.X), core.Floor(b.Pos.Y)
}

func (b Body) String() string {
	return fmt.Sprintf("pos=(%.2f, %.2f) vel=(%.2f, %.2f) ground=%v walk=%s",
		b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.OnGround, b.Walk)
}
