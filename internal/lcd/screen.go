package lcd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Screen is a full display layout, typically loaded from a TOML file:
//
//	clear = true
//
//	[[lines]]
//	row = 0
//	col = 0
//	text = "Hello, World!"
type Screen struct {
	Clear bool   `toml:"clear" json:"clear"`
	Lines []Line `toml:"lines" json:"lines"`
}

// Line is text placed at a cursor position.
type Line struct {
	Row  int    `toml:"row" json:"row"`
	Col  int    `toml:"col" json:"col"`
	Text string `toml:"text" json:"text"`
}

// LoadScreen reads and validates a screen file against g.
func LoadScreen(path string, g Geometry) (Screen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Screen{}, err
	}

	var screen Screen
	if err := toml.Unmarshal(data, &screen); err != nil {
		return Screen{}, fmt.Errorf("failed to parse screen file: %w", err)
	}

	for i, line := range screen.Lines {
		if err := g.contains(line.Row, line.Col); err != nil {
			return Screen{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return screen, nil
}
