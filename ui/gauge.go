package ui

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/gridtui/terminal"
)

// Gauge displays a horizontal progress bar
// Not selectable by default use; callers typically SetSelectable false
//
// The ratio is stored atomically so background workers may call
// SetRatio while the event loop draws
type Gauge struct {
	title string
	ratio atomic.Uint64 // Float64 bits
}

// NewGauge creates a gauge at zero progress
func NewGauge(title string) *Gauge {
	return &Gauge{title: title}
}

// SetRatio updates progress, clamped to [0, 1]
// Safe to call from any goroutine
func (g *Gauge) SetRatio(r float64) {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	g.ratio.Store(math.Float64bits(r))
}

// Ratio returns current progress
func (g *Gauge) Ratio() float64 {
	return math.Float64frombits(g.ratio.Load())
}

func (g *Gauge) Draw(f *Frame) {
	f.DrawBorder(g.title)
	inner := f.Inner()
	if inner.Width() < 1 || inner.Height() < 1 {
		return
	}

	ratio := g.Ratio()
	y := inner.Height() / 2
	filled := int(ratio * float64(inner.Width()))
	for x := 0; x < inner.Width(); x++ {
		ch := '░'
		if x < filled {
			ch = '█'
		}
		inner.SetCell(x, y, string(ch), f.TitleColor, false)
	}

	label := fmt.Sprintf(" %3.0f%% ", ratio*100)
	x := (inner.Width() - len(label)) / 2
	if x >= 0 && inner.Height() > 1 {
		inner.Text(x, y-1, label, f.Color, false)
	}
}

func (g *Gauge) HandleKey(ev terminal.Event) bool { return false }

func (g *Gauge) HelpText() string { return "" }
