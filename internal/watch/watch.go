// Package watch reports changes to a fixed set of files.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("wls.watch")

// FileWatcher calls OnChange for each watched file that is written,
// created or replaced. Parent directories are watched rather than the files
// themselves so that editors which save by renaming are noticed too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)

	debounce time.Duration
	pending  map[string]time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewFileWatcher(paths []string, onChange func(path string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// MinDebounce is the shortest quiet period SetDebounce accepts.
const MinDebounce = 10 * time.Millisecond

// SetDebounce sets how long a file must stay quiet before OnChange runs.
// Durations below MinDebounce are raised to it.
func (w *FileWatcher) SetDebounce(d time.Duration) {
	w.debounce = max(d, MinDebounce)
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends watching and waits for the event loop to exit.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debugf("%s: %s", event.Name, event.Op)
				w.pending[filepath.Clean(event.Name)] = time.Now()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watch: %s", err)
		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *FileWatcher) flush(now time.Time) {
	for path, seen := range w.pending {
		if now.Sub(seen) < w.debounce {
			continue
		}
		delete(w.pending, path)
		w.onChange(path)
	}
}
