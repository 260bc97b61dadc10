// Package config loads the game's YAML configuration: display pacing,
// audio, asset directories, and key bindings. Values resolve from an
// explicit path, then the user config directory, then the working
// directory, then the embedded defaults, with file values overriding the
// defaults field by field.
package config

import (
	"fmt"

	"github.com/lawkern/sokoban/input"
)

// Config is the full configuration document.
type Config struct {
	Display  Display  `yaml:"display"`
	Audio    Audio    `yaml:"audio"`
	Assets   Assets   `yaml:"assets"`
	Bindings Bindings `yaml:"bindings"`
}

// Display controls frame pacing and the terminal presenter.
type Display struct {
	FPS       int    `yaml:"fps"`
	Workers   int    `yaml:"workers"` // 0 selects a worker per CPU, capped at 8
	ColorMode string `yaml:"color_mode"`
}

// Audio controls sound playback.
type Audio struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // WAV files overriding the synthesized effects
}

// Assets points at external art and level directories. Empty values fall
// back to the built-in content.
type Assets struct {
	TileDir  string `yaml:"tile_dir"`
	LevelDir string `yaml:"level_dir"`
	Seed     uint64 `yaml:"seed"`
}

// Bindings maps action names to the key names that trigger them. Key name
// resolution belongs to the terminal host; this package only checks that
// the action names exist.
type Bindings map[string][]string

// Color modes the terminal presenter accepts.
const (
	ColorAuto      = "auto"
	ColorTrue      = "truecolor"
	ColorIndexed   = "256"
	ColorGreyscale = "greyscale"
)

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Display: Display{
			FPS:       60,
			Workers:   0,
			ColorMode: ColorAuto,
		},
		Audio: Audio{
			Enabled: true,
		},
		Assets: Assets{
			Seed: 0x1234,
		},
		Bindings: Bindings{
			"confirm":    {"enter"},
			"pause":      {"p"},
			"cancel":     {"q"},
			"move_up":    {"w", "up"},
			"move_down":  {"s", "down"},
			"move_left":  {"a", "left"},
			"move_right": {"d", "right"},
			"dash":       {"ctrl"},
			"charge":     {"shift"},
			"undo":       {"u"},
			"reload":     {"r"},
			"next":       {"."},
			"previous":   {","},
		},
	}
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: fps %d outside 1-240", c.Display.FPS)
	}
	if c.Display.Workers < 0 || c.Display.Workers > 128 {
		return fmt.Errorf("config: workers %d outside 0-128", c.Display.Workers)
	}

	switch c.Display.ColorMode {
	case ColorAuto, ColorTrue, ColorIndexed, ColorGreyscale:
	default:
		return fmt.Errorf("config: unknown color_mode %q", c.Display.ColorMode)
	}

	for name := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("config: unknown action %q in bindings", name)
		}
	}
	return nil
}
