// Package watch re-runs generation when the theme document or content
// files change. Events are debounced so editor save bursts trigger a
// single rebuild.
package watch

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"

	"github.com/motioncss/motioncss/internal/logger"
)

// DefaultDebounce is the quiet period required before a rebuild fires.
const DefaultDebounce = 250 * time.Millisecond

// Watcher wraps fsnotify with recursive directory registration and
// debounced change notification.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *logger.Logger
	Debounce time.Duration
}

// New creates a Watcher. The logger may be nil.
func New(log *logger.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fs: fs, log: log.WithComponent("watch"), Debounce: DefaultDebounce}, nil
}

// Add registers a path. Directories are registered recursively; paths
// that do not exist are ignored so missing content roots behave the same
// way they do during scanning.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return w.fs.Add(path)
	}

	return godirwalk.Walk(path, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return w.fs.Add(osPathname)
			}
			return nil
		},
		ErrorCallback: func(string, error) godirwalk.ErrorAction {
			return godirwalk.SkipNode
		},
	})
}

// Run blocks until the context is canceled, invoking onChange after each
// debounced burst of filesystem events. Newly created directories are
// registered as they appear.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			timer.Reset(w.Debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watch error")

		case <-timer.C:
			onChange()
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
