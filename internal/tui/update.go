package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update advances the preview clock and handles key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.finished || m.quitting {
			return m, nil
		}
		m.elapsed += tickInterval
		m.iteration = int(m.elapsed / m.def.Duration)

		if !m.def.Iterations.Infinite && m.iteration >= m.def.Iterations.Count {
			m.iteration = m.def.Iterations.Count - 1
			m.finished = true
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > 10 {
			m.bar.Width = width
		}
	}

	return m, nil
}
