// Package render projects the world, the viewport and the body into a
// character buffer. It performs a full redraw every frame.
package render

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/viewport"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Visual characters and colors.
const (
	BodyGlyph  = '@'
	BodyColor  = core.ColorBrightYellow
	SolidColor = core.ColorGray
)

// Frame renders the visible part of the world into a new screen of exactly
// the viewport's size.
func Frame(w *world.TileWorld, v viewport.Viewport, b physics.Body) *core.Screen {
	s := core.NewScreen(v.Width, v.Height)
	Draw(s, 0, 0, w, v, b)
	return s
}

// Draw renders the visible part of the world into dst with its top-left
// corner at (offX, offY). The body's cell overrides the tile beneath it.
func Draw(dst *core.Screen, offX, offY int, w *world.TileWorld, v viewport.Viewport, b physics.Body) {
	for sy := 0; sy < v.Height; sy++ {
		for sx := 0; sx < v.Width; sx++ {
			wx, wy := v.X+sx, v.Y+sy
			kind := world.CellEmpty
			if w.InBounds(wx, wy) {
				kind = w.Cell(wx, wy)
			}

			color := core.ColorDefault
			if kind == world.CellSolid {
				color = SolidColor
			}
			dst.SetColored(offX+sx, offY+sy, kind.Glyph(), color)
		}
	}

	bx, by := b.Cell()
	if v.Contains(bx, by) {
		sx, sy := v.ToScreen(bx, by)
		dst.SetColored(offX+sx, offY+sy, BodyGlyph, BodyColor)
	}
}
