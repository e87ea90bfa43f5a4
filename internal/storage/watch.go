package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"octalysis/internal/state"
)

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// DebounceDelay is how long to wait for more writes before reloading.
	DebounceDelay time.Duration
	Logger        *slog.Logger
}

// Watcher reports snapshots that another process wrote to the database.
type Watcher struct {
	store    *Store
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	running  atomic.Bool
	done     chan struct{}
}

// NewWatcher watches the directory holding store's database. SQLite writes
// land in the main file and its -wal/-shm siblings, so the whole directory
// is watched and filtered by name.
func NewWatcher(store *Store, cfg WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := cfg.DebounceDelay
	if debounce <= 0 {
		debounce = 150 * time.Millisecond
	}
	return &Watcher{
		store:    store,
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Run delivers foreign snapshots to onChange until ctx is cancelled or the
// watcher is closed. onChange runs on the watcher goroutine; callers that
// own single-threaded state must forward it (e.g. as a UI message).
func (w *Watcher) Run(ctx context.Context, onChange func(state.AppState)) {
	w.running.Store(true)
	defer close(w.done)

	base := filepath.Base(w.store.Path())
	var fire <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "err", err)

		case <-fire:
			fire = nil
			st, ok, err := w.store.LoadForeign(ctx)
			if err != nil {
				w.logger.Warn("reload snapshot failed", "err", err)
				continue
			}
			if ok {
				w.logger.Debug("external snapshot change", "path", w.store.Path())
				onChange(st)
			}
		}
	}
}

// Close stops the watcher and waits for a running Run to return.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	if w.running.Load() {
		<-w.done
	}
	return err
}
