// Package level loads level definitions into tile worlds.
//
// Two formats are supported: a plain text grid (.lvl, .txt) where '#' is a
// solid tile and '@' the single spawn point, and a YAML document (.yaml,
// .yml) that embeds the same grid next to an id, a name and metadata.
package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Grid characters.
const (
	SolidChar = '#'
	SpawnChar = '@'
)

// Grid errors. They are wrapped in a core.LevelLoadError by the loader.
var (
	ErrEmptyLevel     = errors.New("level has no rows")
	ErrNoSpawn        = errors.New("level has no spawn marker '@'")
	ErrMultipleSpawns = errors.New("level has more than one spawn marker '@'")
)

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Description string
	World       *world.TileWorld
	SpawnX      int
	SpawnY      int
	Metadata    map[string]string
	FilePath    string
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// ParseGrid parses a text grid into a world and its spawn point.
// Short rows are padded with empty tiles and trailing blank lines are ignored.
func ParseGrid(text string) (w *world.TileWorld, spawnX, spawnY int, err error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, 0, 0, ErrEmptyLevel
	}

	width := 0
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) > width {
			width = len(rows[y])
		}
	}
	if width == 0 {
		return nil, 0, 0, ErrEmptyLevel
	}

	cells := make([][]world.CellKind, len(rows))
	spawns := 0
	for y, row := range rows {
		cells[y] = make([]world.CellKind, width)
		for x, r := range row {
			switch r {
			case SolidChar:
				cells[y][x] = world.CellSolid
			case SpawnChar:
				spawns++
				if spawns > 1 {
					return nil, 0, 0, fmt.Errorf("%w: second marker at (%d, %d)", ErrMultipleSpawns, x, y)
				}
				spawnX, spawnY = x, y
			}
		}
	}
	if spawns == 0 {
		return nil, 0, 0, ErrNoSpawn
	}

	w, err = world.FromRows(cells)
	if err != nil {
		return nil, 0, 0, err
	}
	return w, spawnX, spawnY, nil
}

// ParseText parses a plain text grid level.
func ParseText(id string, data []byte) (*Level, error) {
	w, sx, sy, err := ParseGrid(string(data))
	if err != nil {
		return nil, err
	}
	return &Level{
		ID:     id,
		Name:   id,
		World:  w,
		SpawnX: sx,
		SpawnY: sy,
	}, nil
}
