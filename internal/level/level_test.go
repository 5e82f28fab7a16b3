package level

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestParseGrid(t *testing.T) {
	text := "" +
		"#   #\n" +
		"# @ #\n" +
		"#####\n"

	w, sx, sy, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	if w.Width() != 5 || w.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", w.Width(), w.Height())
	}
	if sx != 2 || sy != 1 {
		t.Errorf("spawn = (%d, %d), expected (2, 1)", sx, sy)
	}
	if w.Cell(2, 1) != world.CellEmpty {
		t.Error("Spawn cell should be empty")
	}
	if w.Cell(0, 0) != world.CellSolid || w.Cell(4, 2) != world.CellSolid {
		t.Error("'#' should parse as solid")
	}
	if w.Cell(1, 0) != world.CellEmpty {
		t.Error("Space should parse as empty")
	}
}

func TestParseGridRaggedRowsAndCRLF(t *testing.T) {
	w, _, _, err := ParseGrid("@\r\n###.x\r\n##\r\n\r\n\r\n")
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	if w.Width() != 5 || w.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", w.Width(), w.Height())
	}
	// Padding and unknown characters are empty
	if w.Cell(4, 0) != world.CellEmpty || w.Cell(3, 1) != world.CellEmpty || w.Cell(4, 1) != world.CellEmpty {
		t.Error("Padding and unknown characters should be empty")
	}
	if w.Cell(1, 2) != world.CellSolid {
		t.Error("Expected solid at (1, 2)")
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected error
	}{
		{"empty", "", ErrEmptyLevel},
		{"only blank lines", "\n\n", ErrEmptyLevel},
		{"no spawn", "###\n   \n###", ErrNoSpawn},
		{"two spawns", "@ @\n###", ErrMultipleSpawns},
		{"two spawns on separate rows", "@\n@\n#", ErrMultipleSpawns},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := ParseGrid(tc.text)
			if !errors.Is(err, tc.expected) {
				t.Errorf("ParseGrid() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	lvl, err := ParseText("intro", []byte("@\n#"))
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	if lvl.ID != "intro" || lvl.Title() != "intro" {
		t.Errorf("ID = %q, Title() = %q, expected intro", lvl.ID, lvl.Title())
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`id: caves
name: The Caves
description: Mind the gaps.
metadata:
  author: test
grid: |
  #        #
  #  @     #
  ##########
`)

	lvl, err := ParseYAML("fallback", data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if lvl.ID != "caves" {
		t.Errorf("ID = %q, expected caves", lvl.ID)
	}
	if lvl.Title() != "The Caves" {
		t.Errorf("Title() = %q, expected The Caves", lvl.Title())
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("Metadata[author] = %q, expected test", lvl.Metadata["author"])
	}
	if lvl.World.Width() != 10 || lvl.World.Height() != 3 {
		t.Errorf("size = %dx%d, expected 10x3", lvl.World.Width(), lvl.World.Height())
	}
	if lvl.SpawnX != 3 || lvl.SpawnY != 1 {
		t.Errorf("spawn = (%d, %d), expected (3, 1)", lvl.SpawnX, lvl.SpawnY)
	}
}

func TestParseYAMLFallbackID(t *testing.T) {
	lvl, err := ParseYAML("plain", []byte("grid: \"@\\n#\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.ID != "plain" || lvl.Name != "plain" {
		t.Errorf("ID, Name = %q, %q, expected fallback id", lvl.ID, lvl.Name)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML("x", []byte("grid: [unclosed")); err == nil {
		t.Error("ParseYAML() with broken YAML should fail")
	}
	if _, err := ParseYAML("x", []byte("name: no grid\n")); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("ParseYAML() without grid error = %v, expected ErrEmptyLevel", err)
	}
}
