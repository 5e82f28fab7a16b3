// Package viewport maps world coordinates to the visible window of a
// character display and scrolls it as the body moves.
package viewport

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Band is the hysteresis band as fractions of the visible size.
// The window only scrolls once the body leaves [Low, High].
type Band struct {
	Low  float64
	High float64
}

// DefaultBand returns the 33%-66% band.
func DefaultBand() Band {
	return Band{Low: 0.33, High: 0.66}
}

// Viewport is the visible window onto the world.
type Viewport struct {
	X, Y          int // top-left visible world cell
	Width, Height int // visible size, never larger than the world

	worldW, worldH int
	band           Band
}

// New creates a viewport for a screen area of screenW x screenH cells over a
// world of worldW x worldH tiles, with its origin at (0, 0).
func New(screenW, screenH, worldW, worldH int, band Band) Viewport {
	v := Viewport{
		worldW: worldW,
		worldH: worldH,
		band:   band,
	}
	v.Resize(screenW, screenH)
	return v
}

// Resize changes the screen area and re-clamps the origin.
func (v *Viewport) Resize(screenW, screenH int) {
	v.Width = core.Clamp(screenW, 0, v.worldW)
	v.Height = core.Clamp(screenH, 0, v.worldH)
	v.X = core.Clamp(v.X, 0, v.worldW-v.Width)
	v.Y = core.Clamp(v.Y, 0, v.worldH-v.Height)
}

// Follow scrolls the window so the body at (x, y) stays inside the band.
// An axis where the whole world fits never scrolls.
func (v *Viewport) Follow(x, y float64) {
	v.X = follow(v.X, v.Width, v.worldW, x, v.band)
	v.Y = follow(v.Y, v.Height, v.worldH, y, v.band)
}

// follow applies the hysteresis rule on one axis.
func follow(origin, size, world int, pos float64, band Band) int {
	if size <= 0 || size >= world {
		return 0
	}
	maxOrigin := world - size
	high := float64(origin) + float64(size)*band.High
	low := float64(origin) + float64(size)*band.Low

	switch {
	case pos > high && origin < maxOrigin:
		origin = core.Floor(pos - float64(size)*band.High)
	case pos < low && origin > 0:
		origin = core.Floor(pos - float64(size)*band.Low)
	}
	return core.Clamp(origin, 0, maxOrigin)
}

// Contains reports whether the world cell (x, y) is visible.
func (v Viewport) Contains(x, y int) bool {
	return core.NewRect(v.X, v.Y, v.Width, v.Height).Contains(x, y)
}

// ToScreen converts a world cell to viewport-relative coordinates.
func (v Viewport) ToScreen(x, y int) (int, int) {
	return x - v.X, y - v.Y
}
