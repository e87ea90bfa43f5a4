package state

// Listener receives every snapshot the store publishes.
type Listener func(AppState)

type subscriber struct {
	id int
	fn Listener
}

// Store is the single writer of AppState. Every mutation publishes a new
// snapshot to all subscribers, synchronously and in registration order.
//
// Store is not safe for concurrent use; all calls must come from the UI
// goroutine. Background producers (file watchers, savers) must hand their
// work to that goroutine instead of calling the store directly.
type Store struct {
	current  AppState
	subs     []subscriber
	nextID   int
	emitting bool
	queue    []AppState
}

func NewStore(initial AppState) *Store {
	return &Store{current: initial.Normalized()}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() AppState {
	return s.current
}

// Subscribe registers fn and immediately calls it with the current snapshot.
// The returned function removes the subscription; calling it twice is safe.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	fn(s.current)
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// UpdateDriver sets one drive. The value is normalized here regardless of
// any clamping the caller already did. Writing the current value is a no-op.
func (s *Store) UpdateDriver(d Driver, value float64) {
	if !d.Valid() {
		return
	}
	next := s.current
	next.Drives[d] = NormalizeValue(value)
	s.publish(next)
}

func (s *Store) SetProjectName(name string) {
	next := s.current
	next.ProjectName = name
	s.publish(next)
}

func (s *Store) SetComment(d Driver, text string) {
	if !d.Valid() {
		return
	}
	next := s.current
	next.Comments[d] = text
	s.publish(next)
}

// Reset restores the defaults.
func (s *Store) Reset() {
	s.publish(Default())
}

// Replace installs a whole snapshot, e.g. one loaded from storage.
func (s *Store) Replace(next AppState) {
	s.publish(next.Normalized())
}

func (s *Store) publish(next AppState) {
	if next == s.current {
		return
	}
	if s.emitting {
		// A subscriber wrote back while being notified. Deliver after the
		// current round so every subscriber sees snapshots in issue order.
		s.queue = append(s.queue, next)
		return
	}
	s.emitting = true
	defer func() { s.emitting = false }()

	s.current = next
	s.notify()
	for len(s.queue) > 0 {
		queued := s.queue[0]
		s.queue = s.queue[1:]
		if queued == s.current {
			continue
		}
		s.current = queued
		s.notify()
	}
}

func (s *Store) notify() {
	// Copy so a listener that unsubscribes does not shift the iteration.
	subs := append([]subscriber(nil), s.subs...)
	snap := s.current
	for _, sub := range subs {
		sub.fn(snap)
	}
}
