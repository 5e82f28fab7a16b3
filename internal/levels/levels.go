// Package levels holds the built-in level catalog. Every file under data/
// is registered with the level registry at init.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// DefaultID is the level played when none is named.
const DefaultID = "1"

//go:embed data/*
var data embed.FS

func init() {
	for _, name := range Files() {
		lvl, err := load(name)
		if err != nil {
			panic(fmt.Sprintf("levels: built-in level %s: %v", name, err))
		}
		registry.Register(lvl.ID, lvl.Title(), func() (*level.Level, error) {
			return load(name)
		})
	}
}

// Files returns the embedded level file names, sorted.
func Files() []string {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && level.IsSupported(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func load(name string) (*level.Level, error) {
	raw, err := data.ReadFile(path.Join("data", name))
	if err != nil {
		return nil, err
	}
	return level.Decode(name, raw)
}
