// Package scanner discovers animation utility usage by walking the
// configured content globs and extracting animate-<name> class tokens.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/karrick/godirwalk"
	"golang.org/x/sync/errgroup"

	"github.com/motioncss/motioncss/internal/logger"
	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

// Utility class tokens as they appear in markup, e.g. class="animate-fadeIn".
var utilityPattern = regexp.MustCompile(`animate-([a-zA-Z][a-zA-Z0-9_-]*)`)

// Directories never worth descending into, whatever the globs say.
var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

const maxFileSize = 10 << 20

// Usage is the set of animation names referenced from content.
type Usage map[string]struct{}

// Has reports whether the named animation is referenced.
func (u Usage) Has(name string) bool {
	_, ok := u[name]
	return ok
}

// Names returns the referenced animation names in sorted order.
func (u Usage) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scanner walks content roots and collects utility usage.
type Scanner struct {
	log *logger.Logger
}

// New creates a Scanner. The logger may be nil.
func New(log *logger.Logger) *Scanner {
	return &Scanner{log: log.WithComponent("scanner")}
}

// Scan walks every content glob relative to baseDir concurrently and
// returns the union of animation names referenced. Globs whose static
// prefix does not exist are skipped with a warning rather than failing
// the run.
func (s *Scanner) Scan(ctx context.Context, baseDir string, globs []string) (Usage, error) {
	usage := make(Usage)
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	for _, glob := range globs {
		group.Go(func() error {
			found, err := s.scanGlob(ctx, baseDir, glob)
			if err != nil {
				return err
			}
			mu.Lock()
			for name := range found {
				usage[name] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return usage, nil
}

func (s *Scanner) scanGlob(ctx context.Context, baseDir, glob string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix, pattern := doublestar.SplitPattern(glob)
	root := filepath.Join(baseDir, filepath.FromSlash(prefix))

	info, err := os.Stat(root)
	if err != nil {
		s.log.WithFields(map[string]any{"glob": glob, "root": root}).Warn("content root does not exist, skipping")
		return nil, nil
	}

	found := make(Usage)

	if !info.IsDir() {
		if ok, _ := doublestar.Match(pattern, filepath.Base(root)); ok || pattern == "." {
			if err := scanFile(root, found); err != nil {
				return nil, err
			}
		}
		return found, nil
	}

	walkErr := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if de.IsDir() {
				if ignoredDirs[de.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			// A glob with no meta characters names the root itself;
			// everything beneath it is in scope.
			if pattern != "." {
				rel, err := filepath.Rel(root, osPathname)
				if err != nil {
					return err
				}
				matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
				if err != nil {
					return err
				}
				if !matched {
					return nil
				}
			}
			return scanFile(osPathname, found)
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			s.log.WithFields(map[string]any{"path": path}).Warn("skipping unreadable entry")
			return godirwalk.SkipNode
		},
	})
	if walkErr != nil {
		return nil, motionerrors.NewScanError(root, walkErr)
	}
	return found, nil
}

func scanFile(path string, found Usage) error {
	info, err := os.Stat(path)
	if err != nil {
		return motionerrors.NewScanError(path, err)
	}
	if info.Size() > maxFileSize {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return motionerrors.NewScanError(path, err)
	}

	for _, m := range utilityPattern.FindAllSubmatch(data, -1) {
		found[string(m[1])] = struct{}{}
	}
	return nil
}
