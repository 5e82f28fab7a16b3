// Package world holds the static tile grid the body moves through.
package world

import (
	"errors"
	"fmt"
)

// CellKind is the content of a single tile.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSolid
)

// Glyph returns the character used to draw a tile of this kind.
func (k CellKind) Glyph() rune {
	if k == CellSolid {
		return '#'
	}
	return ' '
}

// ErrInvalidSize is returned when a world would have a non-positive dimension
// or a cell count that does not match its dimensions.
var ErrInvalidSize = errors.New("world: invalid size")

// TileWorld is an immutable grid of tiles sized to the loaded level.
// Cells are stored row-major.
type TileWorld struct {
	width  int
	height int
	cells  []CellKind
}

// New creates a world from row-major cells. The slice is copied.
func New(width, height int, cells []CellKind) (*TileWorld, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidSize, len(cells), width, height)
	}

	w := &TileWorld{
		width:  width,
		height: height,
		cells:  make([]CellKind, len(cells)),
	}
	copy(w.cells, cells)
	return w, nil
}

// FromRows builds a world from equal-length rows of cells.
func FromRows(rows [][]CellKind) (*TileWorld, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	width := len(rows[0])
	cells := make([]CellKind, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSize, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	return New(width, len(rows), cells)
}

// Width returns the number of columns.
func (w *TileWorld) Width() int {
	return w.width
}

// Height returns the number of rows.
func (w *TileWorld) Height() int {
	return w.height
}

// InBounds reports whether (x, y) addresses a tile.
func (w *TileWorld) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// Cell returns the tile at (x, y).
// Callers must check InBounds first; out-of-bounds access panics.
func (w *TileWorld) Cell(x, y int) CellKind {
	if !w.InBounds(x, y) {
		panic(fmt.Sprintf("world: cell (%d, %d) outside %dx%d", x, y, w.width, w.height))
	}
	return w.cells[y*w.width+x]
}

// SolidAt reports whether (x, y) is a solid tile.
// Coordinates outside the world are empty.
func (w *TileWorld) SolidAt(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	return w.cells[y*w.width+x] == CellSolid
}

// SolidCount returns the number of solid tiles.
func (w *TileWorld) SolidCount() int {
	n := 0
	for _, c := range w.cells {
		if c == CellSolid {
			n++
		}
	}
	return n
}
