package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/viewport"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func mustWorld(t *testing.T, rows ...string) *world.TileWorld {
	t.Helper()
	cells := make([][]world.CellKind, len(rows))
	for y, row := range rows {
		cells[y] = make([]world.CellKind, len(row))
		for x, r := range row {
			if r == '#' {
				cells[y][x] = world.CellSolid
			}
		}
	}
	w, err := world.FromRows(cells)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return w
}

func TestFrameWholeWorld(t *testing.T) {
	w := mustWorld(t,
		"#    #",
		"#    #",
		"######",
	)
	v := viewport.New(80, 24, w.Width(), w.Height(), viewport.DefaultBand())
	b := physics.Body{Pos: physics.Vec2{X: 2.7, Y: 1.2}}

	got := Frame(w, v, b).Join("\n")
	expected := "#    #\n# @  #\n######"
	if got != expected {
		t.Errorf("Frame() = %q, expected %q", got, expected)
	}
}

func TestFrameNoTrailingSeparator(t *testing.T) {
	w := mustWorld(t, "   ", "###")
	v := viewport.New(3, 2, 3, 2, viewport.DefaultBand())

	frame := Frame(w, v, physics.NewBody(1, 0)).Join("\r\n")
	if strings.HasSuffix(frame, "\r\n") {
		t.Errorf("frame %q should not end with a separator", frame)
	}
	if strings.Count(frame, "\r\n") != 1 {
		t.Errorf("frame %q should have exactly one separator", frame)
	}
}

func TestBodyOverridesSolidTile(t *testing.T) {
	w := mustWorld(t, "###", "###")
	v := viewport.New(3, 2, 3, 2, viewport.DefaultBand())
	b := physics.Body{Pos: physics.Vec2{X: 1.5, Y: 1.9}}

	s := Frame(w, v, b)
	if c := s.GetCell(1, 1); c.Rune != BodyGlyph || c.Color != BodyColor {
		t.Errorf("cell (1, 1) = %+v, expected the body glyph", c)
	}
	if c := s.GetCell(0, 0); c.Rune != '#' || c.Color != SolidColor {
		t.Errorf("cell (0, 0) = %+v, expected a solid tile", c)
	}
}

func TestFrameScrolledWindow(t *testing.T) {
	w := mustWorld(t,
		"          ",
		"##########",
	)
	v := viewport.New(4, 2, w.Width(), w.Height(), viewport.DefaultBand())
	v.X = 6
	b := physics.Body{Pos: physics.Vec2{X: 7, Y: 0}}

	s := Frame(w, v, b)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.Join("|"); got != " @  |####" {
		t.Errorf("Frame() = %q, expected body at column 1 over the floor", got)
	}
}

func TestBodyOutsideWindowIsNotDrawn(t *testing.T) {
	w := mustWorld(t, "     ", "#####")
	v := viewport.New(5, 2, 5, 2, viewport.DefaultBand())

	for _, pos := range []physics.Vec2{{X: 2, Y: -1}, {X: 2, Y: 7}} {
		s := Frame(w, v, physics.Body{Pos: pos})
		if strings.ContainsRune(s.Join("\n"), BodyGlyph) {
			t.Errorf("body at %+v should not be drawn, frame %q", pos, s.Join("\n"))
		}
	}
}

func TestDrawAtOffset(t *testing.T) {
	w := mustWorld(t, "  ", "##")
	v := viewport.New(2, 2, 2, 2, viewport.DefaultBand())
	dst := core.NewScreen(4, 4)

	Draw(dst, 1, 2, w, v, physics.NewBody(0, 0))

	if got := dst.GetCell(1, 2).Rune; got != BodyGlyph {
		t.Errorf("GetCell(1, 2) = %q, expected body", got)
	}
	if got := dst.Join("|"); got != "    |    | @  | ## " {
		t.Errorf("Draw() = %q, expected floor at offset", got)
	}
	if dst.GetCell(0, 0).Rune != ' ' {
		t.Error("Draw should not touch cells outside the offset window")
	}
}
