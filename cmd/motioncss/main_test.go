package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motioncss/motioncss/internal/logger"
)

// execute runs the CLI with a quiet logger and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	root := newRootCmd(&appContext{log: log})
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	execErr := root.Execute()
	return buf.String(), execErr
}

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const themeFixture = `content:
  - "src/**/*.html"
theme:
  extend:
    keyframes:
      wiggle:
        "0%, 100%": { transform: "rotate(-3deg)" }
        "50%": { transform: "rotate(3deg)" }
    animation:
      wiggle: "wiggle 1s ease-in-out infinite"
output: dist/motion.css
`
