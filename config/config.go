// Package config loads optional TOML overrides for the toolkit's
// in-process construction parameters: grid shape, keys, refresh
// interval, border glyphs, and the auto-focus rule.
//
// A missing config file is not an error; defaults apply. Unknown key
// or border names are rejected at load time.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gridtui/terminal"
	"github.com/lixenwraith/gridtui/ui"
)

// Config mirrors the TOML file layout
type Config struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	ExitKey  string `toml:"exit_key"`
	CycleKey string `toml:"cycle_key"`

	AutoFocusButtons bool `toml:"auto_focus_buttons"`

	// RefreshMS > 0 enables timed redraws without user input
	RefreshMS int `toml:"refresh_ms"`

	// Border selects the widget border glyph set:
	// single, double, rounded, heavy, none
	Border string `toml:"border"`
}

// Default returns the built-in parameters
func Default() Config {
	return Config{
		Rows:             3,
		Cols:             3,
		ExitKey:          "ctrl_q",
		CycleKey:         "tab",
		AutoFocusButtons: true,
		Border:           "single",
	}
}

// Load reads a TOML file over the defaults
// A missing file yields the defaults without error
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	return parse(data, cfg)
}

// Parse reads TOML data over the defaults
func Parse(data []byte) (Config, error) {
	return parse(data, Default())
}

func parse(data []byte, cfg Config) (Config, error) {
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return Config{}, fmt.Errorf("config: rows and cols must be >= 1, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.RefreshMS < 0 {
		return Config{}, fmt.Errorf("config: refresh_ms must be >= 0, got %d", cfg.RefreshMS)
	}
	if _, err := borderSet(cfg.Border); err != nil {
		return Config{}, err
	}
	if _, err := keyOf("exit_key", cfg.ExitKey); err != nil {
		return Config{}, err
	}
	if _, err := keyOf("cycle_key", cfg.CycleKey); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options translates the config into manager construction options
func (c Config) Options() ui.Options {
	// Names were validated by parse
	exit, _ := keyOf("exit_key", c.ExitKey)
	cycle, _ := keyOf("cycle_key", c.CycleKey)
	border, _ := borderSet(c.Border)
	return ui.Options{
		Rows:             c.Rows,
		Cols:             c.Cols,
		ExitKey:          exit,
		CycleKey:         cycle,
		AutoFocusButtons: c.AutoFocusButtons,
		RefreshInterval:  time.Duration(c.RefreshMS) * time.Millisecond,
		Border:           border,
	}
}

// keyOf resolves a canonical key name from the config
func keyOf(field, name string) (terminal.Key, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return terminal.KeyNone, nil
	}
	k, ok := terminal.KeyFromName(name)
	if !ok {
		return terminal.KeyNone, fmt.Errorf("config: %s: unknown key name %q", field, name)
	}
	return k, nil
}

// borderSet resolves a border style name
func borderSet(name string) (ui.BorderSet, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "", "single":
		return ui.BorderSingle, nil
	case "double":
		return ui.BorderDouble, nil
	case "rounded":
		return ui.BorderRounded, nil
	case "heavy":
		return ui.BorderHeavy, nil
	case "none":
		return ui.BorderNone, nil
	default:
		return ui.BorderSet{}, fmt.Errorf("config: unknown border style %q", name)
	}
}
