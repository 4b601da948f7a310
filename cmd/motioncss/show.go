package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motioncss/motioncss/internal/generate"
)

func newShowCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one animation's definition and generated CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, app *appContext, name string) error {
	_, table, err := loadTheme(app)
	if err != nil {
		return err
	}

	def, ok := table.Resolve(name)
	if !ok {
		return fmt.Errorf("animation %q is not registered (try 'motioncss list')", name)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:       %s\n", def.Name)
	fmt.Fprintf(out, "shorthand:  %s\n", def.Shorthand())
	fmt.Fprintf(out, "keyframes:  %d\n", len(def.Keyframes))
	fmt.Fprintln(out)
	fmt.Fprint(out, generate.Snippet(def))
	return nil
}
