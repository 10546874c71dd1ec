package ledger

import "sync"

// eventStream fans ledger events out to a single subscriber channel in a
// non-blocking fashion. Events are dropped when the buffer is full: a slow
// log tailer must never stall the orchestrator.
type eventStream struct {
	once   sync.Once
	ch     chan Event
	closed bool
	mu     sync.Mutex
}

// streamBuffer is the subscriber channel capacity.
const streamBuffer = 64

func newEventStream() *eventStream {
	return &eventStream{ch: make(chan Event, streamBuffer)}
}

// Emit sends the event without blocking; it is silently dropped when the
// channel is full or already closed.
func (s *eventStream) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
	}
}

// Subscribe returns the read side of the stream.
func (s *eventStream) Subscribe() <-chan Event {
	return s.ch
}

// Close closes the stream exactly once.
func (s *eventStream) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.ch)
	})
}
