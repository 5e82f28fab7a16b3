package world

import (
	"errors"
	"testing"
)

func TestNewValidatesSize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		cells  int
		hasErr bool
	}{
		{"valid", 3, 2, 6, false},
		{"zero width", 0, 2, 0, true},
		{"negative height", 3, -1, 0, true},
		{"cell count mismatch", 3, 2, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, make([]CellKind, tc.cells))
			if (err != nil) != tc.hasErr {
				t.Fatalf("New() error = %v, expected error: %v", err, tc.hasErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New() error = %v, expected ErrInvalidSize", err)
			}
		})
	}
}

func TestNewCopiesCells(t *testing.T) {
	cells := []CellKind{CellEmpty, CellSolid}
	w, err := New(2, 1, cells)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cells[0] = CellSolid
	if w.Cell(0, 0) != CellEmpty {
		t.Error("World should not alias the caller's slice")
	}
}

func TestFromRows(t *testing.T) {
	w, err := FromRows([][]CellKind{
		{CellEmpty, CellEmpty, CellEmpty},
		{CellSolid, CellSolid, CellSolid},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	if w.Width() != 3 || w.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", w.Width(), w.Height())
	}
	if w.SolidCount() != 3 {
		t.Errorf("SolidCount() = %d, expected 3", w.SolidCount())
	}

	if _, err := FromRows([][]CellKind{{CellEmpty}, {CellEmpty, CellSolid}}); err == nil {
		t.Error("FromRows() with ragged rows should fail")
	}
	if _, err := FromRows(nil); err == nil {
		t.Error("FromRows(nil) should fail")
	}
}

func TestSolidAtOutOfBoundsIsEmpty(t *testing.T) {
	w, _ := New(2, 2, []CellKind{CellSolid, CellSolid, CellSolid, CellSolid})

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{1, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 2, false},
	}

	for _, tc := range tests {
		if got := w.SolidAt(tc.x, tc.y); got != tc.expected {
			t.Errorf("SolidAt(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestCellPanicsOutOfBounds(t *testing.T) {
	w, _ := New(1, 1, []CellKind{CellEmpty})

	defer func() {
		if recover() == nil {
			t.Error("Cell(5, 5) should panic")
		}
	}()
	w.Cell(5, 5)
}

func TestGlyph(t *testing.T) {
	if CellSolid.Glyph() != '#' {
		t.Errorf("CellSolid.Glyph() = %q, expected '#'", CellSolid.Glyph())
	}
	if CellEmpty.Glyph() != ' ' {
		t.Errorf("CellEmpty.Glyph() = %q, expected ' '", CellEmpty.Glyph())
	}
}
