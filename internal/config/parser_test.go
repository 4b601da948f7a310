package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `content:
  - "src/**/*.{vue,js,ts}"
  - "index.html"
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

	invalidYAML := `content: [unterminated
theme:
`

	badSelector := `theme:
  extend:
    keyframes:
      wiggle:
        "halfway": { transform: "rotate(3deg)" }
`

	badAnimationName := `theme:
  extend:
    animation:
      "2fast": "2fast 1s"
`

	emptyShorthand := `theme:
  extend:
    animation:
      wiggle: ""
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, []string{"src/**/*.{vue,js,ts}", "index.html"}, cfg.Content)
				require.Equal(t, "dist/motion.css", cfg.Output)
				require.Contains(t, cfg.Theme.Extend.Keyframes, "wiggle")
				require.Equal(t, "wiggle 1s ease-in-out infinite", cfg.Theme.Extend.Animation["wiggle"])
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *motionerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unparseable selector returns validation error",
			contents: badSelector,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *motionerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "keyframes[wiggle]")
			},
		},
		{
			name:     "invalid animation name returns validation error",
			contents: badAnimationName,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *motionerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name:     "empty shorthand fails schema validation",
			contents: emptyShorthand,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *motionerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *motionerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateRejectsBadGlob(t *testing.T) {
	t.Parallel()

	cfg := &Config{Content: []string{"src/[unclosed"}}
	err := Validate(cfg)
	require.Error(t, err)

	var validationErr *motionerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "content")
}

func TestParseSelector(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []float64
	}{
		{"0%", []float64{0}},
		{"50%", []float64{50}},
		{"0%, 100%", []float64{0, 100}},
		{"0%,100%", []float64{0, 100}},
		{"from", []float64{0}},
		{"to", []float64{100}},
		{"from, 50%, to", []float64{0, 50, 100}},
		{"12.5%", []float64{12.5}},
	}
	for _, tc := range cases {
		got, err := ParseSelector(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "half", "50", "%", "fifty%"} {
		_, err := ParseSelector(bad)
		require.Error(t, err, bad)
	}
}
