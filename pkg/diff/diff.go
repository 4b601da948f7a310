// Package diff renders unified diffs between a stylesheet on disk and
// the stylesheet generation would produce, for drift checks in CI.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxLines        = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Unified compares two stylesheet contents and returns a unified-diff
// rendering of the changes, or an empty string when they are identical.
// Very large diffs are truncated.
func Unified(current, generated []byte, currentLabel, generatedLabel string) string {
	if bytes.Equal(current, generated) {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(current), string(generated), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", currentLabel)
	fmt.Fprintf(&buf, "+++ %s\n", generatedLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxLines {
		return strings.Join(lines[:maxLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}
