package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"octalysis/internal/state"
)

// Saver writes snapshots in the background. Rapid updates (a drag produces
// one per mouse move) are coalesced: only the latest snapshot pending when
// the debounce timer fires is written.
type Saver struct {
	store    *Store
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *state.AppState
	running bool
	closed  bool
	lastErr error
	idle    *sync.Cond
}

type SaverOpts struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

func NewSaver(store *Store, opts SaverOpts) *Saver {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Saver{store: store, debounce: debounce, logger: logger}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Notify schedules snap to be written. It never blocks on I/O, so it can be
// used directly as a state store listener.
func (s *Saver) Notify(snap state.AppState) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = &snap
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.onTimer)
		return
	}
	s.timer.Reset(s.debounce)
}

func (s *Saver) onTimer() {
	s.mu.Lock()
	if s.running {
		// A write is in flight; it picks up the pending snapshot when done.
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.drain()
}

// drain writes pending snapshots until none is left.
func (s *Saver) drain() {
	s.mu.Lock()
	for s.running {
		s.idle.Wait()
	}
	s.running = true
	for s.pending != nil {
		snap := *s.pending
		s.pending = nil
		s.mu.Unlock()

		err := s.store.Save(context.Background(), snap)
		if err != nil {
			s.logger.Warn("save snapshot failed", "err", err)
		}

		s.mu.Lock()
		s.lastErr = err
	}
	s.running = false
	s.idle.Broadcast()
	s.mu.Unlock()
}

// Flush writes any pending snapshot now and returns the last write error.
func (s *Saver) Flush() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.drain()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close flushes and stops accepting snapshots.
func (s *Saver) Close() error {
	if s == nil {
		return nil
	}
	err := s.Flush()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return err
}
