package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motioncss/motioncss/internal/config"
)

func newCheckCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the theme document and the merged animation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, app *appContext) error {
	cfg, err := config.Load(app.flags.configPath)
	if err != nil {
		return err
	}

	table, err := config.BuildTable(cfg)
	if err != nil {
		return err
	}

	for _, name := range config.UnboundKeyframes(cfg) {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: keyframes %q is never referenced by an animation\n", name)
	}

	extensions := len(cfg.Theme.Extend.Animation)
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d animations (%d from theme extensions)\n",
		app.flags.configPath, table.Len(), extensions)
	return nil
}
