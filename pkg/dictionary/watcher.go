package dictionary

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bastiangx/codeassist/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before a reload fires.
const DefaultDebounce = 150 * time.Millisecond

// Watch blocks until ctx is done, calling onChange with the path of every
// watched file that was written, created or renamed into place. Bursts of
// events within debounce of each other collapse into one call per file.
// The parent directories are watched, since editors often save by replacing
// the file.
func Watch(ctx context.Context, paths []string, debounce time.Duration, onChange func(path string)) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watchLog := logger.New("watch")
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watchLog.Debugf("Watching %s", dir)
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !targets[name] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending[name] = true
			timer.Reset(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)
			for _, p := range changed {
				watchLog.Infof("Reloading %s", filepath.Base(p))
				onChange(p)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			watchLog.Warnf("Watcher error: %v", err)
		}
	}
}
