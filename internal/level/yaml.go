package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Grid        string            `yaml:"grid"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level document. fallbackID is used when the
// document has no id.
func ParseYAML(fallbackID string, data []byte) (*Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	w, sx, sy, err := ParseGrid(yl.Grid)
	if err != nil {
		return nil, err
	}

	id := yl.ID
	if id == "" {
		id = fallbackID
	}
	name := yl.Name
	if name == "" {
		name = id
	}

	return &Level{
		ID:          id,
		Name:        name,
		Description: yl.Description,
		World:       w,
		SpawnX:      sx,
		SpawnY:      sy,
		Metadata:    yl.Metadata,
	}, nil
}
