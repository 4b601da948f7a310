// Package generate renders the animation table into a stylesheet:
// @keyframes blocks plus animate-<name> utility classes.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/motioncss/motioncss/internal/animation"
	"github.com/motioncss/motioncss/internal/scanner"
	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

// Header marks the output as generated, in the style of other
// scan-and-generate stylesheet tools.
const Header = "/* This file is generated by motioncss from the animation theme table. DO NOT EDIT. */"

// Options controls which table entries are rendered.
type Options struct {
	// All emits every table entry regardless of scanned usage. This is
	// the behavior when no content globs are configured.
	All bool
	// Strict turns references to unregistered animation names into a
	// hard error instead of a warning.
	Strict bool
}

// Result carries the rendered stylesheet plus bookkeeping for reporting.
type Result struct {
	CSS     string
	Emitted []string
	// Missing lists names referenced in content that the table cannot
	// resolve. Unless Strict is set these are the caller's to warn about.
	Missing []string
}

// Stylesheet renders CSS for the used subset of the table (or all of it,
// per Options). Output is deterministic: animations sorted by name,
// keyframes by offset, properties by name.
func Stylesheet(table *animation.Table, usage scanner.Usage, opts Options) (Result, error) {
	var emit []string
	var missing []string

	if opts.All {
		emit = table.Names()
	} else {
		for _, name := range usage.Names() {
			if _, ok := table.Resolve(name); ok {
				emit = append(emit, name)
			} else {
				missing = append(missing, name)
			}
		}
	}

	if opts.Strict && len(missing) > 0 {
		return Result{}, motionerrors.NewGenerateError("", fmt.Errorf("unresolved animation names: %s", strings.Join(missing, ", ")))
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	for _, name := range emit {
		def, _ := table.Resolve(name)
		b.WriteString("\n")
		b.WriteString(Snippet(def))
	}

	return Result{CSS: b.String(), Emitted: emit, Missing: missing}, nil
}

// Snippet renders the CSS for a single definition: its @keyframes block
// followed by the utility class.
func Snippet(def animation.Definition) string {
	var b strings.Builder
	writeKeyframes(&b, def)
	b.WriteString("\n")
	writeUtility(&b, def)
	return b.String()
}

func writeKeyframes(b *strings.Builder, def animation.Definition) {
	rows := append([]animation.Keyframe(nil), def.Keyframes...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Offset < rows[j].Offset })

	fmt.Fprintf(b, "@keyframes %s {\n", def.Name)
	for _, kf := range rows {
		fmt.Fprintf(b, "  %s%% {\n", strconv.FormatFloat(kf.Offset, 'f', -1, 64))

		props := make([]string, 0, len(kf.Props))
		for prop := range kf.Props {
			props = append(props, prop)
		}
		sort.Strings(props)
		for _, prop := range props {
			fmt.Fprintf(b, "    %s: %s;\n", prop, kf.Props[prop])
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
}

func writeUtility(b *strings.Builder, def animation.Definition) {
	fmt.Fprintf(b, ".animate-%s {\n  animation: %s;\n}\n", def.Name, def.Shorthand())
}

// WriteFile writes the stylesheet to the target path, creating parent
// directories as needed.
func WriteFile(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return motionerrors.NewGenerateError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return motionerrors.NewGenerateError(path, err)
	}
	return nil
}
