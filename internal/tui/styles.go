package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	shorthandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
