package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateWritesUsedAnimations(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)
	writeFixture(t, dir, "src/index.html", `<div class="animate-fadeIn animate-wiggle"></div>`)

	_, err := execute(t, "generate", "-c", "motion.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "dist", "motion.css"))
	require.NoError(t, err)
	css := string(data)

	require.Contains(t, css, "@keyframes fadeIn {")
	require.Contains(t, css, "@keyframes wiggle {")
	require.Contains(t, css, "animation: wiggle 1s ease-in-out infinite;")
	require.NotContains(t, css, "zoomPulse")
}

func TestGenerateToStdout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)
	writeFixture(t, dir, "src/page.html", `class="animate-zoomPulse"`)

	output, err := execute(t, "generate", "-c", "motion.yaml", "-o", "-")
	require.NoError(t, err)
	require.Contains(t, output, "@keyframes zoomPulse {")
	require.NotContains(t, output, "fadeIn")
}

func TestGenerateAllIgnoresUsage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)

	output, err := execute(t, "generate", "-c", "motion.yaml", "--all", "-o", "-")
	require.NoError(t, err)
	require.Contains(t, output, "@keyframes fadeIn {")
	require.Contains(t, output, "@keyframes zoomPulse {")
	require.Contains(t, output, "@keyframes swingRotate {")
	require.Contains(t, output, "@keyframes wiggle {")
}

func TestGenerateWithoutDocumentEmitsBuiltins(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := execute(t, "generate")
	require.NoError(t, err)
	require.Contains(t, output, "@keyframes fadeIn {")
	require.Contains(t, output, "@keyframes zoomPulse {")
	require.Contains(t, output, "@keyframes swingRotate {")
}

func TestGenerateCheckDetectsDrift(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)
	writeFixture(t, dir, "src/index.html", `class="animate-fadeIn"`)

	// No stylesheet on disk yet: check reports drift without writing.
	output, err := execute(t, "generate", "-c", "motion.yaml", "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of date")
	require.Contains(t, output, "+++ generated")
	require.NoFileExists(t, filepath.Join(dir, "dist", "motion.css"))

	// After generating, the same check passes.
	_, err = execute(t, "generate", "-c", "motion.yaml")
	require.NoError(t, err)

	output, err = execute(t, "generate", "-c", "motion.yaml", "--check")
	require.NoError(t, err)
	require.Contains(t, output, "up to date")
}

func TestGenerateCheckRequiresOutputPath(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "generate", "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--check requires an output path")
}

func TestGenerateStrictFailsOnUnknownReference(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)
	writeFixture(t, dir, "src/bad.html", `class="animate-doesNotExist"`)

	_, err := execute(t, "generate", "-c", "motion.yaml", "--strict", "-o", "-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "doesNotExist")
}

func TestGenerateNonStrictSkipsUnknownReference(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFixture(t, dir, "motion.yaml", themeFixture)
	writeFixture(t, dir, "src/mixed.html", `class="animate-fadeIn animate-doesNotExist"`)

	output, err := execute(t, "generate", "-c", "motion.yaml", "-o", "-")
	require.NoError(t, err)
	require.Contains(t, output, "@keyframes fadeIn {")
	require.NotContains(t, output, "doesNotExist")
}
