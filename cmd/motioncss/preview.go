package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/motioncss/motioncss/internal/tui"
)

func newPreviewCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Play an animation's value curve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(app, args[0])
		},
	}

	return cmd
}

func runPreview(app *appContext, name string) error {
	_, table, err := loadTheme(app)
	if err != nil {
		return err
	}

	def, ok := table.Resolve(name)
	if !ok {
		return fmt.Errorf("animation %q is not registered (try 'motioncss list')", name)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview requires an interactive terminal")
	}

	program := tea.NewProgram(tui.NewModel(def))
	_, err = program.Run()
	return err
}
