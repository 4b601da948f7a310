package main

import (
	"github.com/spf13/cobra"

	"github.com/motioncss/motioncss/internal/config"
	"github.com/motioncss/motioncss/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

// appContext carries the pieces shared by every command.
type appContext struct {
	flags rootFlags
	log   *logger.Logger
}

func newRootCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "motioncss",
		Short:         "motioncss generates animation utility CSS from a declarative theme table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !app.flags.verbose && !app.flags.noColor {
				return nil
			}
			level := "info"
			if app.flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, NoColor: app.flags.noColor})
			if err != nil {
				return err
			}
			app.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&app.flags.configPath, "config", "c", config.DefaultPath, "Path to the theme document")
	cmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&app.flags.noColor, "no-color", false, "Disable colored log output")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
