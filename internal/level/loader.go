package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".txt", ".yaml", ".yml"}
}

// IsSupported reports whether path has a supported level extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// LoadFile loads a single level file. Every failure is a *core.LevelLoadError.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.LevelLoadError{Path: path, Err: err}
	}

	lvl, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	lvl.FilePath = path
	return lvl, nil
}

// Decode parses level data, picking the format from the extension of name.
// The level ID defaults to the base name without extension.
func Decode(name string, data []byte) (*Level, error) {
	ext := strings.ToLower(filepath.Ext(name))
	id := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var (
		lvl *Level
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		lvl, err = ParseYAML(id, data)
	case ".lvl", ".txt":
		lvl, err = ParseText(id, data)
	default:
		err = fmt.Errorf("unsupported extension: %q", ext)
	}
	if err != nil {
		return nil, &core.LevelLoadError{Path: name, Err: err}
	}
	return lvl, nil
}
