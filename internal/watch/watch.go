package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the bursts of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// File calls fn once, then again each time path is written or replaced,
// until ctx is done. The parent directory is watched rather than the file,
// so saves that rename a temporary file over path are seen, as is a file
// that does not exist yet.
func File(ctx context.Context, path string, debounce time.Duration, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	fn()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}
