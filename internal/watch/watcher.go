// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/idlgen/errors"
)

// ChangeCallback is called once per debounced burst of changes
type ChangeCallback func(changed []string) error

// Watcher watches files for changes and triggers callbacks.
// Parent directories are watched so editors that replace files by rename are seen.
type Watcher struct {
	files          map[string]bool
	watcher        *fsnotify.Watcher
	callback       ChangeCallback
	debouncePeriod time.Duration
	log            *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer
	runMu         sync.Mutex
	pending       map[string]bool
	done          chan struct{}
	wg            sync.WaitGroup
}

// New creates a watcher over files. Nothing is delivered until Start.
func New(files []string, debounce time.Duration, log *zap.SugaredLogger, callback ChangeCallback) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:          make(map[string]bool),
		watcher:        fw,
		callback:       callback,
		debouncePeriod: debounce,
		log:            log,
		pending:        make(map[string]bool),
		done:           make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}
	return w, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}

			w.log.Debugw("Watcher detected change",
				"file", event.Name,
				"op", event.Op.String())
			w.schedule(name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnw("Watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// schedule debounces rapid file changes into one callback
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[name] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.fire)
}

// fire runs the callback for everything pending. Runs never overlap: a
// timer firing during a run waits and then picks up what accumulated.
func (w *Watcher) fire() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(changed) == 0 {
		return
	}
	if err := w.callback(changed); err != nil {
		// The next change triggers another run
		w.log.Warnw("Watch callback failed", "error", err)
	}
}

// Stop stops watching; a pending debounced callback is cancelled
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
