// Package tui renders a terminal preview of one animation: the eased
// progress bar plus the interpolated value of its numeric property
// track, sampled with the animation's real timing curve.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/motioncss/motioncss/internal/animation"
)

const tickInterval = 50 * time.Millisecond

type tickMsg struct{}

// Model contains the Bubbletea state for the animation preview.
type Model struct {
	def        animation.Definition
	channel    animation.Channel
	hasChannel bool
	bar        progress.Model
	elapsed    time.Duration
	iteration  int
	finished   bool
	quitting   bool
}

// NewModel constructs a preview model for the given definition.
func NewModel(def animation.Definition) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	channel, ok := def.NumericChannel()
	return Model{
		def:        def,
		channel:    channel,
		hasChannel: ok,
		bar:        bar,
	}
}

// Init starts the preview ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Fraction returns the linear position within the current iteration.
func (m Model) Fraction() float64 {
	if m.finished {
		if m.def.Fill == animation.FillForwards || m.def.Fill == animation.FillBoth {
			return 1
		}
		return 0
	}
	cycle := m.elapsed % m.def.Duration
	return float64(cycle) / float64(m.def.Duration)
}

// Eased returns the timing-curve progress for the current position.
func (m Model) Eased() float64 {
	return m.def.Timing.Progress(m.Fraction())
}

// Value samples the numeric property track at the current position.
func (m Model) Value() (float64, bool) {
	if !m.hasChannel {
		return 0, false
	}
	return m.channel.At(m.Eased()), true
}

// Iteration reports the one-based iteration currently playing.
func (m Model) Iteration() int {
	return m.iteration + 1
}

// IsFinished reports whether a finite animation has played out.
func (m Model) IsFinished() bool {
	return m.finished
}
