// Package watcher re-runs a listing whenever the watched directory gains,
// loses or renames an entry.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/harrison/lss/internal/logger"
)

// Options configures the watcher.
type Options struct {
	// Debounce is how long the directory has to stay quiet before a refresh.
	Debounce time.Duration
	// IgnoreHidden drops events for names starting with ".".
	IgnoreHidden bool
	// Ignore lists absolute paths or filepath.Match patterns whose events
	// are dropped, such as files lss itself writes into the directory.
	Ignore []string
}

// Watcher monitors one directory level for name changes.
type Watcher struct {
	fs     *fsnotify.Watcher
	dir    string
	opts   Options
	logger logger.Logger
}

// New creates a watcher for path. A file path watches its parent directory.
func New(path string, opts Options, log logger.Logger) (*Watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Watcher{fs: fsw, dir: dir, opts: opts, logger: log}, nil
}

// Dir returns the absolute directory being watched.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run calls refresh after every settled burst of changes until ctx is done.
// An error from refresh stops the loop and is returned. Run closes the
// watcher on return.
func (w *Watcher) Run(ctx context.Context, refresh func() error) error {
	defer w.fs.Close()

	// Stopped until the first relevant event arrives
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.LogTrace(fmt.Sprintf("watch event %s %s", event.Op, event.Name))
			timer.Reset(w.opts.Debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.LogWarn(fmt.Sprintf("watch error: %v", err))
		case <-timer.C:
			w.logger.LogDebug(fmt.Sprintf("refreshing listing of %s", w.dir))
			if err := refresh(); err != nil {
				return err
			}
		}
	}
}

// relevant reports whether event can change the set of names in the directory.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.opts.IgnoreHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, pattern := range w.opts.Ignore {
		if name == pattern {
			return false
		}
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return false
		}
	}
	return true
}
