package runner

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before it
// triggers a run.
const DefaultDebounce = 300 * time.Millisecond

// skipDirs hold build output or dependencies, never sources.
var skipDirs = map[string]bool{
	"target":       true,
	"node_modules": true,
	"__pycache__":  true,
}

// Watch calls onChange each time a source under dir changes, coalescing
// bursts of events within debounce. It runs until ctx is cancelled.
//
// Events that arrive while onChange runs, or from files it wrote, are
// dropped so a build does not retrigger itself. An error from onChange is
// logged and watching continues.
func Watch(ctx context.Context, dir string, debounce time.Duration, onChange func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addTree(watcher, dir); err != nil {
		return err
	}

	slog.Info("runner: watching for changes", "dir", dir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	var quietUntil time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if time.Now().Before(quietUntil) || ignored(event.Name) {
				continue
			}
			// New directories (a freshly scaffolded entry) are watched too.
			if event.Has(fsnotify.Create) {
				_ = addTree(watcher, event.Name)
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("runner: change", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			if err := onChange(ctx); err != nil && ctx.Err() == nil {
				slog.Error("runner: run failed", "err", err)
			}
			quietUntil = time.Now().Add(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("runner: watcher error", "err", err)
		}
	}
}

// addTree watches root and every directory below it that may hold sources.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignored(path) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func ignored(path string) bool {
	base := filepath.Base(path)
	return hidden(base) || skipDirs[base]
}
