package config

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridtui/terminal"
	"github.com/lixenwraith/gridtui/ui"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
rows = 4
cols = 2
exit_key = "ctrl_c"
cycle_key = "tab"
auto_focus_buttons = false
refresh_ms = 250
border = "rounded"
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Rows != 4 || cfg.Cols != 2 {
		t.Errorf("grid: got %dx%d, want 4x2", cfg.Rows, cfg.Cols)
	}
	if cfg.AutoFocusButtons {
		t.Error("auto_focus_buttons should be overridden to false")
	}

	opts := cfg.Options()
	if opts.ExitKey != terminal.KeyCtrlC {
		t.Errorf("exit key: got %v, want KeyCtrlC", opts.ExitKey)
	}
	if opts.RefreshInterval != 250*time.Millisecond {
		t.Errorf("refresh: got %v, want 250ms", opts.RefreshInterval)
	}
	if opts.Border != ui.BorderRounded {
		t.Errorf("border: got %+v, want rounded", opts.Border)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestParseRejectsUnknownKeyName(t *testing.T) {
	if _, err := Parse([]byte(`exit_key = "hyper_x"`)); err == nil {
		t.Error("unknown key name accepted")
	}
}

func TestParseRejectsUnknownBorder(t *testing.T) {
	if _, err := Parse([]byte(`border = "dotted"`)); err == nil {
		t.Error("unknown border style accepted")
	}
}

func TestParseRejectsBadGrid(t *testing.T) {
	if _, err := Parse([]byte("rows = 0")); err == nil {
		t.Error("rows = 0 accepted")
	}
	if _, err := Parse([]byte("refresh_ms = -5")); err == nil {
		t.Error("negative refresh accepted")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir() + "/does-not-exist.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}
