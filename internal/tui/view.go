package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// View renders the preview frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.def.Name))
	b.WriteString("  ")
	b.WriteString(shorthandStyle.Render(m.def.Shorthand()))
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(m.Eased()))
	b.WriteString("\n\n")

	if value, ok := m.Value(); ok {
		rendered := strconv.FormatFloat(value, 'f', 2, 64) + m.channel.Unit
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s: %s", m.channel.Property, rendered)))
	} else {
		b.WriteString(mutedStyle.Render("no numeric property track to sample"))
	}
	b.WriteString("\n")

	if m.def.Iterations.Infinite {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("iteration %d of infinite", m.Iteration())))
	} else if m.finished {
		b.WriteString(doneStyle.Render("finished"))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("iteration %d of %d", m.Iteration(), m.def.Iterations.Count)))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}
