package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/motioncss/motioncss/internal/animation"
	"github.com/motioncss/motioncss/internal/config"
)

// loadTheme reads the theme document and builds the merged animation
// table. When the document at the default path does not exist the
// built-in table is used on its own; an explicitly configured path must
// exist.
func loadTheme(app *appContext) (*config.Config, *animation.Table, error) {
	path := app.flags.configPath

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == config.DefaultPath {
			app.log.Debug("no theme document found, using built-in animations")
			table, buildErr := config.BuildTable(nil)
			return nil, table, buildErr
		}
		return nil, nil, fmt.Errorf("theme document %s: %w", path, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	table, err := config.BuildTable(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, table, nil
}

// contentRoots lists the distinct static prefixes of the configured
// globs, for watch registration.
func contentRoots(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}

	seen := make(map[string]bool)
	for _, glob := range cfg.Content {
		base, _ := doublestar.SplitPattern(glob)
		seen[base] = true
	}

	roots := make([]string, 0, len(seen))
	for root := range seen {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}
