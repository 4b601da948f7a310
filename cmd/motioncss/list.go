package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/motioncss/motioncss/internal/animation"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *appContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the animations in the merged theme table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions) error {
	_, table, err := loadTheme(app)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, table)
	}
	return renderListTable(cmd, table)
}

func renderListTable(cmd *cobra.Command, table *animation.Table) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tDURATION\tTIMING\tITERATIONS\tFILL\tKEYFRAMES")

	for _, name := range table.Names() {
		def, _ := table.Resolve(name)
		fill := string(def.Fill)
		if fill == "" {
			fill = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%d\n",
			def.Name,
			animation.FormatDuration(def.Duration),
			def.Timing.String(),
			def.Iterations.String(),
			fill,
			len(def.Keyframes),
		)
	}

	return writer.Flush()
}

type listJSONKeyframe struct {
	Offset float64           `json:"offset"`
	Props  map[string]string `json:"props"`
}

type listJSONAnimation struct {
	Name       string             `json:"name"`
	Duration   time.Duration      `json:"duration_ns"`
	DurationS  string             `json:"duration"`
	Timing     string             `json:"timing"`
	Iterations string             `json:"iterations"`
	Fill       string             `json:"fill,omitempty"`
	Keyframes  []listJSONKeyframe `json:"keyframes"`
}

type listJSONPayload struct {
	Count      int                 `json:"count"`
	Animations []listJSONAnimation `json:"animations"`
}

func renderListJSON(cmd *cobra.Command, table *animation.Table) error {
	payload := listJSONPayload{Count: table.Len()}

	for _, name := range table.Names() {
		def, _ := table.Resolve(name)
		entry := listJSONAnimation{
			Name:       def.Name,
			Duration:   def.Duration,
			DurationS:  animation.FormatDuration(def.Duration),
			Timing:     def.Timing.String(),
			Iterations: def.Iterations.String(),
			Fill:       string(def.Fill),
		}
		for _, kf := range def.Keyframes {
			entry.Keyframes = append(entry.Keyframes, listJSONKeyframe{Offset: kf.Offset, Props: kf.Props})
		}
		payload.Animations = append(payload.Animations, entry)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
