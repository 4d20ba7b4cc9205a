package source

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ///////////////////////////////////////////////
// Watcher
// ///////////////////////////////////////////////

// Watcher monitors a palette file for changes using fsnotify with a polling
// fallback, so watch mode works on filesystems without native notification
// support (network mounts, some containers).
type Watcher struct {
	// path is the palette file being monitored.
	path string
	// events delivers a signal each time the file changes.
	// The channel is buffered to 1 so back-to-back writes coalesce.
	events chan struct{}
	// done is closed by [Watcher.Close] to signal goroutines to exit.
	done chan struct{}
	// fsw is the underlying fsnotify watcher; nil when polling.
	fsw *fsnotify.Watcher
	// once ensures [Watcher.Close] is idempotent.
	once sync.Once
	// polling is true when the watcher has fallen back to stat-based polling.
	polling atomic.Bool
	// pollInterval is the duration between stat calls in polling mode.
	pollInterval time.Duration
	// debounce is the quiet period required before an event is delivered.
	// Zero disables debouncing.
	debounce time.Duration
	// mu guards timer.
	mu sync.Mutex
	// timer is the pending debounce timer, nil when none is armed.
	timer *time.Timer
}

// NewWatcher creates a Watcher for the given palette file path. It uses
// fsnotify as the primary change detection mechanism and falls back to
// polling at pollInterval if fsnotify is unavailable. Events are held back
// until the file has been quiet for the debounce duration, so editors that
// write in several bursts trigger a single re-parse.
func NewWatcher(path string, pollInterval, debounce time.Duration) (*Watcher, error) {
	w := &Watcher{
		path:         path,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: pollInterval,
		debounce:     debounce,
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Info("fsnotify unavailable, falling back to polling", "error", err)
		w.polling.Store(true)
		go w.poll()
		return w, nil
	}

	w.fsw = fsw
	if err := fsw.Add(path); err != nil {
		slog.Info("cannot watch file, falling back to polling", "path", path, "error", err)
		fsw.Close()
		w.fsw = nil
		w.polling.Store(true)
		go w.poll()
		return w, nil
	}

	go w.watch()
	return w, nil
}

// Polling reports whether the watcher is using polling instead of fsnotify.
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Events returns a channel that receives a signal when the file changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = fmt.Errorf("closing fsnotify watcher: %w", closeErr)
			}
		}
	})
	return err
}

// watch loops over fsnotify events and forwards write/create notifications
// to the events channel. If fsnotify encounters an error, watch closes the
// native watcher and falls back to [Watcher.poll].
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Info("fsnotify error, switching to polling", "error", err)
			w.fsw.Close()
			w.fsw = nil
			w.polling.Store(true)
			go w.poll()
			return
		}
	}
}

// poll periodically stats the palette file and sends a notification when
// the modification time advances. It runs as a fallback when fsnotify is
// unavailable.
func (w *Watcher) poll() {
	var lastMod time.Time
	info, err := os.Stat(w.path)
	if err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				w.notify()
			}
		}
	}
}

// notify schedules delivery of a change signal. With debouncing enabled each
// raw event re-arms the timer, so the signal fires only after the file has
// been quiet for the full debounce window.
func (w *Watcher) notify() {
	if w.debounce <= 0 {
		w.emit()
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.emit)
		return
	}
	w.timer.Reset(w.debounce)
}

// emit sends a single signal to the events channel. If a signal is already
// pending the call is a no-op, coalescing rapid successive changes.
func (w *Watcher) emit() {
	select {
	case w.events <- struct{}{}:
	default:
		// Channel already has a pending event, skip
	}
}
