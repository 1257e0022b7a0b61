package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultInterval is the minimum spacing between delivered events.
const DefaultInterval = 250 * time.Millisecond

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher watches single files for changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temp file and renaming it over the
// original keep producing events. Bursts of events are throttled: the
// first event is delivered immediately, later ones are coalesced and the
// most recent is delivered once the interval has passed.
type Watcher struct {
	interval time.Duration

	mu       sync.Mutex
	closed   bool
	watchers []*fsnotify.Watcher
}

// NewWatcher creates a watcher. A non-positive interval uses DefaultInterval.
func NewWatcher(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{interval: interval}
}

// Watch starts watching path until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	dir := filepath.Dir(target)
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("watch dir %s: %w", dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("watch dir %s: not a directory", dir)
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrWatcherClosed
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		w.mu.Unlock()
		fsw.Close()
		return nil, fmt.Errorf("watch dir %s: %w", dir, err)
	}
	w.watchers = append(w.watchers, fsw)
	w.mu.Unlock()

	out := make(chan domain.FileEvent)
	pending := make(chan domain.FileEvent, 1)

	go w.collect(ctx, fsw, target, pending)
	go w.deliver(ctx, pending, out)

	logger.Debug("Watching %s", target)
	return out, nil
}

// collect translates fsnotify events for target into pending file events.
// Only the newest undelivered event is kept.
func (w *Watcher) collect(ctx context.Context, fsw *fsnotify.Watcher, target string, pending chan domain.FileEvent) {
	defer close(pending)
	defer w.release(fsw)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			ev := handleFsEvent(event, target)
			if ev == nil {
				continue
			}
			// replace any undelivered event with the newer one
			select {
			case <-pending:
			default:
			}
			pending <- *ev
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", target, err)
		}
	}
}

// deliver forwards pending events to out, at most one per interval.
func (w *Watcher) deliver(ctx context.Context, pending <-chan domain.FileEvent, out chan<- domain.FileEvent) {
	defer close(out)

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	for ev := range pending {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		// a newer event may have arrived while waiting
		select {
		case newer, ok := <-pending:
			if ok {
				ev = newer
			}
		default:
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// release closes fsw and forgets it.
func (w *Watcher) release(fsw *fsnotify.Watcher) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.watchers {
		if existing == fsw {
			w.watchers = append(w.watchers[:i], w.watchers[i+1:]...)
			break
		}
	}
	fsw.Close()
}

// Close stops all active watches. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	var errs []error
	for _, fsw := range w.watchers {
		if err := fsw.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.watchers = nil
	return errors.Join(errs...)
}

// handleFsEvent maps an fsnotify event to a file event for target.
// Returns nil for events about other files and for attribute changes.
func handleFsEvent(event fsnotify.Event, target string) *domain.FileEvent {
	if filepath.Clean(event.Name) != target {
		return nil
	}

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		return &domain.FileEvent{Path: target, Type: domain.FileChanged}
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileEvent{Path: target, Type: domain.FileRemoved}
	default:
		return nil
	}
}
