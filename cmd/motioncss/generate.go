package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/motioncss/motioncss/internal/config"
	"github.com/motioncss/motioncss/internal/generate"
	"github.com/motioncss/motioncss/internal/scanner"
	"github.com/motioncss/motioncss/internal/watch"
	"github.com/motioncss/motioncss/pkg/diff"
)

type generateOptions struct {
	out    string
	all    bool
	strict bool
	watch  bool
	check  bool
}

func newGenerateCmd(app *appContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan content and write the animation stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return runGenerateWatch(cmd, app, opts)
			}
			return runGenerate(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output path (overrides the document's output field; - for stdout)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Emit every animation regardless of scanned usage")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when content references an unregistered animation")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when the theme document or content changes")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify the output file is up to date instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *appContext, opts *generateOptions) error {
	cfg, table, err := loadTheme(app)
	if err != nil {
		return err
	}

	var usage scanner.Usage
	emitAll := opts.all || cfg == nil || len(cfg.Content) == 0
	if !emitAll {
		usage, err = scanner.New(app.log).Scan(cmd.Context(), ".", cfg.Content)
		if err != nil {
			return err
		}
	}

	res, err := generate.Stylesheet(table, usage, generate.Options{All: emitAll, Strict: opts.strict})
	if err != nil {
		return err
	}

	for _, name := range res.Missing {
		app.log.WithFields(map[string]any{"animation": name}).Warn("content references an unregistered animation")
	}
	for _, name := range config.UnboundKeyframes(cfg) {
		app.log.WithFields(map[string]any{"keyframes": name}).Warn("keyframes block is never referenced by an animation")
	}

	target := opts.out
	if target == "" && cfg != nil {
		target = cfg.Output
	}

	if opts.check {
		return runGenerateCheck(cmd, target, res.CSS)
	}

	if target == "" || target == "-" {
		fmt.Fprint(cmd.OutOrStdout(), res.CSS)
		return nil
	}

	if err := generate.WriteFile(target, res.CSS); err != nil {
		return err
	}
	app.log.WithFields(map[string]any{
		"target":     target,
		"animations": strings.Join(res.Emitted, ","),
	}).Info("stylesheet written")
	return nil
}

// runGenerateCheck compares the stylesheet on disk against the freshly
// generated one and fails when they drift apart.
func runGenerateCheck(cmd *cobra.Command, target, css string) error {
	if target == "" || target == "-" {
		return fmt.Errorf("--check requires an output path (set output in the theme document or pass --out)")
	}

	current, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	unified := diff.Unified(current, []byte(css), target, "generated")
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", target)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), unified)
	return fmt.Errorf("%s is out of date, run 'motioncss generate'", target)
}

func runGenerateWatch(cmd *cobra.Command, app *appContext, opts *generateOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, _, err := loadTheme(app)
	if err != nil {
		return err
	}

	w, err := watch.New(app.log)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(app.flags.configPath); err != nil {
		return err
	}
	for _, root := range contentRoots(cfg) {
		if err := w.Add(root); err != nil {
			return err
		}
	}

	rebuild := func() {
		if err := runGenerate(cmd, app, opts); err != nil {
			app.log.Error(err, "generation failed")
		}
	}

	rebuild()
	app.log.Info("watching for changes, press ctrl+c to stop")
	return w.Run(ctx, rebuild)
}
