package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestScanFindsUtilityTokens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<div class="animate-fadeIn container"></div>`)
	writeFile(t, dir, "src/App.vue", `<span :class="['animate-zoomPulse', extra]">hi</span>`)
	writeFile(t, dir, "src/util.ts", `const cls = "animate-swingRotate";`)
	writeFile(t, dir, "src/ignore.txt", `animate-notScanned`)

	s := New(nil)
	usage, err := s.Scan(context.Background(), dir, []string{"index.html", "src/**/*.{vue,ts}"})
	require.NoError(t, err)

	require.Equal(t, []string{"fadeIn", "swingRotate", "zoomPulse"}, usage.Names())
	require.True(t, usage.Has("fadeIn"))
	require.False(t, usage.Has("notScanned"))
}

func TestScanDeduplicatesAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.html", `animate-fadeIn animate-fadeIn`)
	writeFile(t, dir, "b.html", `animate-fadeIn`)

	usage, err := New(nil).Scan(context.Background(), dir, []string{"*.html"})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn"}, usage.Names())
}

func TestScanSkipsMissingRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.html", `animate-fadeIn`)

	usage, err := New(nil).Scan(context.Background(), dir, []string{"index.html", "missing/**/*.js"})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn"}, usage.Names())
}

func TestScanSkipsIgnoredDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/app.js", `animate-fadeIn`)
	writeFile(t, dir, "src/node_modules/dep/index.js", `animate-vendored`)
	writeFile(t, dir, "src/.git/hook.js", `animate-hooked`)

	usage, err := New(nil).Scan(context.Background(), dir, []string{"src/**/*.js"})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn"}, usage.Names())
}

func TestScanDirectoryGlobMatchesEverythingBeneath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/deep/nested/app.vue", `animate-zoomPulse`)

	usage, err := New(nil).Scan(context.Background(), dir, []string{"src"})
	require.NoError(t, err)
	require.Equal(t, []string{"zoomPulse"}, usage.Names())
}

func TestScanHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.html", `animate-fadeIn`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Scan(ctx, dir, []string{"index.html"})
	require.Error(t, err)
}

func TestScanEmptyGlobListYieldsNoUsage(t *testing.T) {
	t.Parallel()

	usage, err := New(nil).Scan(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	require.Empty(t, usage)
}
