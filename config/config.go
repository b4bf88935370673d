package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"pursuit/game"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a game config. Missing keys keep the defaults.
type File struct {
	BoardSize    *int    `yaml:"board_size"`
	PoliceCount  *int    `yaml:"police_count"`
	ThiefCount   *int    `yaml:"thief_count"`
	ThiefMode    *string `yaml:"thief_mode"`    // manual | automatic
	ThiefPolicy  *string `yaml:"thief_policy"`  // random | escape
	PolicePolicy *string `yaml:"police_policy"` // greedy | minimax
	MaxTurns     *int    `yaml:"max_turns"`
	Seed         *uint64 `yaml:"seed"`
	Display      Display `yaml:"display"`
}

type Display struct {
	ShowAnimations *bool   `yaml:"show_animations"`
	CellSize       *string `yaml:"cell_size"`
	ColorScheme    *string `yaml:"color_scheme"`
}

// Load reads a YAML config file and applies it over the defaults.
func Load(path string) (game.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return game.Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data. Unknown keys and unsupported values are
// errors; piece counts are clamped like any other config.
func Parse(data []byte) (game.Config, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return game.Config{}, fmt.Errorf("failed to decode yaml: %w", err)
	}

	patch, err := f.Patch()
	if err != nil {
		return game.Config{}, err
	}
	return patch.Apply(game.DefaultConfig()).Validate(), nil
}

// Patch converts the file into a config patch, checking enum values.
func (f File) Patch() (game.ConfigPatch, error) {
	p := game.ConfigPatch{
		BoardSize:      f.BoardSize,
		PoliceCount:    f.PoliceCount,
		ThiefCount:     f.ThiefCount,
		MaxTurns:       f.MaxTurns,
		Seed:           f.Seed,
		ShowAnimations: f.Display.ShowAnimations,
		CellSize:       f.Display.CellSize,
		ColorScheme:    f.Display.ColorScheme,
	}

	if f.BoardSize != nil && *f.BoardSize != game.SmallBoard && *f.BoardSize != game.LargeBoard {
		return p, fmt.Errorf("unsupported board size %d", *f.BoardSize)
	}
	if f.MaxTurns != nil && *f.MaxTurns <= 0 {
		return p, fmt.Errorf("max_turns must be positive, got %d", *f.MaxTurns)
	}

	if f.ThiefMode != nil {
		mode := game.ThiefMode(*f.ThiefMode)
		if mode != game.ThiefManual && mode != game.ThiefAutomatic {
			return p, fmt.Errorf("unknown thief mode %q", *f.ThiefMode)
		}
		p.ThiefMode = &mode
	}
	if f.ThiefPolicy != nil {
		policy := game.ThiefPolicy(*f.ThiefPolicy)
		if policy != game.ThiefRandom && policy != game.ThiefEscape {
			return p, fmt.Errorf("unknown thief policy %q", *f.ThiefPolicy)
		}
		p.ThiefPolicy = &policy
	}
	if f.PolicePolicy != nil {
		policy := game.PolicePolicy(*f.PolicePolicy)
		if policy != game.PoliceGreedy && policy != game.PoliceMinimax {
			return p, fmt.Errorf("unknown police policy %q", *f.PolicePolicy)
		}
		p.PolicePolicy = &policy
	}
	return p, nil
}
