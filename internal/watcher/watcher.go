// Package watcher provides debounced file system watching for the tasks file.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is the time to wait after the last file event before
// triggering a callback. Editors and concurrent taskwatch processes tend to
// emit bursts of events per save; this coalesces them into one notification.
const debounceDelay = 100 * time.Millisecond

// Watcher watches the taskwatch directory for changes to the tasks file and
// invokes a callback with debouncing.
type Watcher struct {
	fsw      *fsnotify.Watcher
	file     string // base name of the tasks file to react to
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
}

// New creates a Watcher that monitors dataPath's directory and fires the
// callback (debounced) whenever the tasks file changes. The directory is
// watched rather than the file itself so that atomic replace-style writes
// keep being observed.
func New(dataPath string, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(dataPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsw:      fsw,
		file:     filepath.Base(dataPath),
		callback: callback,
	}, nil
}

// Run starts the watch loop. It blocks until the context is canceled.
// Errors from the underlying watcher are passed to the optional errFn callback.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Only react to meaningful operations on the tasks file.
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != w.file {
				continue
			}
			w.debounce()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.callback)
}
