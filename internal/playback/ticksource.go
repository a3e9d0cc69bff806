package playback

import "sync"

// TickListener receives playback timing notifications. OnTick is an
// ordinary time advance; OnSeek is an explicit seek gesture, which forces
// dependent state to reset regardless of the seek direction.
type TickListener interface {
	OnTick(t float64)
	OnSeek(t float64)
}

// TickSource is the subscription contract between a playback clock and a
// viewing session: register a listener, get back the unsubscribe function.
// Implementations must stop delivering notifications once unsubscribe
// returns.
type TickSource interface {
	Subscribe(l TickListener) (unsubscribe func())
}

// TickFeed is a simple fan-out TickSource driven by explicit Emit calls,
// typically from the playback transport of a client connection. Listeners
// are invoked synchronously; delivery order across listeners is
// unspecified.
type TickFeed struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]TickListener
}

// NewTickFeed creates an empty tick feed
func NewTickFeed() *TickFeed {
	return &TickFeed{listeners: make(map[int]TickListener)}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing is idempotent.
func (f *TickFeed) Subscribe(l TickListener) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = l
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

// Emit delivers a time-advance notification to all subscribed listeners
func (f *TickFeed) Emit(t float64) {
	for _, l := range f.snapshot() {
		l.OnTick(t)
	}
}

// EmitSeek delivers a seek notification to all subscribed listeners
func (f *TickFeed) EmitSeek(t float64) {
	for _, l := range f.snapshot() {
		l.OnSeek(t)
	}
}

func (f *TickFeed) snapshot() []TickListener {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]TickListener, 0, len(f.listeners))
	for _, l := range f.listeners {
		out = append(out, l)
	}
	return out
}
