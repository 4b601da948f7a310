package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

// DefaultPath is the theme document loaded when no --config flag is given.
const DefaultPath = "motion.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a theme-extension document from disk, validates it, and
// returns the resulting model.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, motionerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, motionerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
