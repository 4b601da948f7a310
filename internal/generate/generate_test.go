package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motioncss/motioncss/internal/animation"
	"github.com/motioncss/motioncss/internal/scanner"
	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

func usageOf(names ...string) scanner.Usage {
	u := make(scanner.Usage, len(names))
	for _, name := range names {
		u[name] = struct{}{}
	}
	return u
}

func TestStylesheetForFadeIn(t *testing.T) {
	t.Parallel()

	res, err := Stylesheet(animation.Builtin(), usageOf("fadeIn"), Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn"}, res.Emitted)
	require.Empty(t, res.Missing)

	want := Header + `

@keyframes fadeIn {
  0% {
    opacity: 0;
  }
  100% {
    opacity: 1;
  }
}

.animate-fadeIn {
  animation: fadeIn 3s ease-in-out 1 forwards;
}
`
	require.Equal(t, want, res.CSS)
}

func TestStylesheetSwingRotateUsesBezierShorthand(t *testing.T) {
	t.Parallel()

	res, err := Stylesheet(animation.Builtin(), usageOf("swingRotate"), Options{})
	require.NoError(t, err)

	require.Contains(t, res.CSS, "@keyframes swingRotate {")
	require.Contains(t, res.CSS, "  15% {\n    transform: rotate(-20deg);\n  }")
	require.Contains(t, res.CSS, "  75% {\n    transform: rotate(-3deg);\n  }")
	require.Contains(t, res.CSS, "animation: swingRotate 2s cubic-bezier(0.4,0,0.2,1) infinite;")
}

func TestStylesheetEmitsAllWhenRequested(t *testing.T) {
	t.Parallel()

	res, err := Stylesheet(animation.Builtin(), nil, Options{All: true})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn", "swingRotate", "zoomPulse"}, res.Emitted)

	require.Contains(t, res.CSS, "@keyframes fadeIn {")
	require.Contains(t, res.CSS, "@keyframes zoomPulse {")
	require.Contains(t, res.CSS, "animation: zoomPulse 2s ease-in-out infinite;")
	require.Contains(t, res.CSS, "@keyframes swingRotate {")
}

func TestStylesheetOrdersOutputDeterministically(t *testing.T) {
	t.Parallel()

	first, err := Stylesheet(animation.Builtin(), usageOf("zoomPulse", "fadeIn", "swingRotate"), Options{})
	require.NoError(t, err)
	second, err := Stylesheet(animation.Builtin(), usageOf("swingRotate", "zoomPulse", "fadeIn"), Options{})
	require.NoError(t, err)

	require.Equal(t, first.CSS, second.CSS)
	require.Equal(t, []string{"fadeIn", "swingRotate", "zoomPulse"}, first.Emitted)
}

func TestStylesheetReportsMissingNames(t *testing.T) {
	t.Parallel()

	res, err := Stylesheet(animation.Builtin(), usageOf("fadeIn", "doesNotExist"), Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"fadeIn"}, res.Emitted)
	require.Equal(t, []string{"doesNotExist"}, res.Missing)
	require.NotContains(t, res.CSS, "doesNotExist")
}

func TestStylesheetStrictFailsOnMissingNames(t *testing.T) {
	t.Parallel()

	_, err := Stylesheet(animation.Builtin(), usageOf("doesNotExist"), Options{Strict: true})
	require.Error(t, err)

	var generateErr *motionerrors.GenerateError
	require.ErrorAs(t, err, &generateErr)
	require.Contains(t, err.Error(), "doesNotExist")
}

func TestStylesheetUnusedTableYieldsHeaderOnly(t *testing.T) {
	t.Parallel()

	res, err := Stylesheet(animation.Builtin(), usageOf(), Options{})
	require.NoError(t, err)
	require.Empty(t, res.Emitted)
	require.Equal(t, Header+"\n", res.CSS)
}

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "dist", "motion.css")
	require.NoError(t, WriteFile(target, "body {}\n"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "body {}\n", string(data))
}
