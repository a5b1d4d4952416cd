package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/gridtui/config"
	"github.com/lixenwraith/gridtui/rules"
	"github.com/lixenwraith/gridtui/terminal"
	"github.com/lixenwraith/gridtui/ui"
)

func main() {
	cfgPath := flag.String("config", "gridtui.toml", "path to the TOML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scr, err := terminal.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer scr.Fini()

	opts := cfg.Options()
	if opts.RefreshInterval == 0 {
		// Spinner and gauge animation need timed redraws
		opts.RefreshInterval = 100 * time.Millisecond
	}

	m, err := ui.NewManager(scr, opts)
	if err != nil {
		scr.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := build(m); err != nil {
		scr.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m.Run()
}

// build places the demo widgets on the grid
func build(m *ui.Manager) error {
	log := ui.NewTextBox("LOG", []string{
		"# gridtui demo log",
		"INFO  screen initialized",
		"WARN  config file missing, using defaults",
		"ERROR simulated failure for rule demo",
		"  indented detail line",
		"INFO  ready",
	})
	logHandle, err := m.Place(log, ui.Placement{Row: 0, Col: 0, RowSpan: 2, ColSpan: 2})
	if err != nil {
		return err
	}

	// Color rules, first match wins
	logRules := []rules.Opts{
		{Pattern: "ERROR", RuleType: rules.StartsWith, MatchType: rules.MatchLine,
			Color: terminal.PairError, SelectedColor: terminal.PairError},
		{Pattern: "WARN", RuleType: rules.StartsWith, MatchType: rules.MatchLine,
			Color: terminal.PairWarning, SelectedColor: terminal.PairWarning},
		{Pattern: "#", RuleType: rules.StartsWith, MatchType: rules.MatchLine,
			Color: terminal.PairHint, SelectedColor: terminal.PairHint},
		{Pattern: `\d+`, RuleType: rules.Contains, MatchType: rules.MatchRegex,
			Color: terminal.PairTitle, SelectedColor: terminal.PairTitle},
	}
	for _, o := range logRules {
		if err := m.AddColorRule(logHandle, o); err != nil {
			return err
		}
	}

	gauge := ui.NewGauge("PROGRESS")
	gaugeHandle, err := m.Place(gauge, ui.Placement{Row: 2, Col: 0, ColSpan: 2})
	if err != nil {
		return err
	}
	if err := m.SetSelectable(gaugeHandle, false); err != nil {
		return err
	}

	menu := ui.NewMenu("ACTIONS", []string{
		"Show message",
		"Ask a question",
		"Name something",
		"Start a job",
	})
	menu.OnSelect = func(index int, item string) {
		switch index {
		case 0:
			m.OpenMessage("Message", "Popups own the keyboard until closed. Press any key.")
		case 1:
			m.OpenConfirm("Question", "Clear the log?", func(yes bool) {
				if yes {
					log.SetLines([]string{"# log cleared"})
				}
			})
		case 2:
			m.OpenInput("Name", "Log line to append:", "", func(text string) {
				if text != "" {
					log.AppendLine(text)
				}
			})
		case 3:
			runJob(m, log, gauge)
		}
	}
	if _, err := m.Place(menu, ui.Placement{Row: 0, Col: 2, RowSpan: 2}); err != nil {
		return err
	}

	quit := ui.NewButton("Quit", nil)
	quit.OnPress = func() {
		m.OpenConfirm("Quit", "Leave the demo?", func(yes bool) {
			if yes {
				m.Stop()
			}
		})
	}
	quitHandle, err := m.Place(quit, ui.Placement{Row: 2, Col: 2})
	if err != nil {
		return err
	}
	if err := m.SetFiresImmediately(quitHandle, true); err != nil {
		return err
	}

	m.BindGlobal(ui.RuneStroke('?'), func() {
		m.OpenMessage("Help", "Arrows move | Tab cycles | Enter focuses | Esc returns | ? help")
	})
	return nil
}

// runJob drives the gauge from a background goroutine behind a
// loading popup. The gauge ratio is atomic, so the worker writes it
// directly; the log line is appended by OnDone on the event loop
func runJob(m *ui.Manager, log *ui.TextBox, gauge *ui.Gauge) {
	lp := m.OpenLoading("Working")
	lp.OnDone = func() {
		log.AppendLine("INFO  job finished")
	}
	go func() {
		for i := 0; i <= 20; i++ {
			gauge.SetRatio(float64(i) / 20)
			time.Sleep(100 * time.Millisecond)
		}
		lp.Stop()
	}()
}
