package allowdirs

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the event bursts editors produce on save.
const watchDebounce = 100 * time.Millisecond

// Watch observes the discovered config files and logs a warning when one
// changes on disk. The cached allowlist is never refreshed in-process —
// the warning tells the operator a restart is required. Watch blocks
// until ctx is canceled. With no config files discovered it returns
// immediately.
func (r *Resolver) Watch(ctx context.Context) error {
	files := r.ConfigFiles()
	if len(files) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch parent directories: editors often replace files on save, and
	// watching the directory survives the rename.
	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		watched[filepath.Clean(f)] = true
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	var pending string
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = event.Name
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			r.logger.Warn("allowlist config changed on disk; restart to apply",
				"path", pending)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("allowlist config watcher error", "error", err)
		}
	}
}
