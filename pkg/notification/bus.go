package notification

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Bus fans banners out to subscribers in-process. Handlers run on the
// publishing goroutine, matching the single-threaded delivery the UI
// surfaces expect.
type Bus struct {
	handlers []func(Notification)
	dismiss  time.Duration
	mu       sync.RWMutex
}

// NewBus creates a Bus whose banners auto-dismiss after d. Non-positive
// durations fall back to AuthDismissAfter.
func NewBus(d time.Duration) *Bus {
	if d <= 0 {
		d = AuthDismissAfter
	}
	return &Bus{dismiss: d}
}

// Subscribe registers a handler for every subsequent banner.
func (b *Bus) Subscribe(handler func(Notification)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers n to all subscribers.
func (b *Bus) Publish(n Notification) {
	slog.Debug("notification.Publish", "kind", n.Kind, "message", n.Message)
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers {
		handler(n)
	}
}

// Success raises a success banner.
func (b *Bus) Success(message string) {
	b.Publish(Notification{Kind: KindSuccess, Message: message, DismissAfter: b.dismiss})
}

// Error raises an error banner.
func (b *Bus) Error(message string) {
	b.Publish(Notification{Kind: KindError, Message: message, DismissAfter: b.dismiss})
}

// Recorder captures banners for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) record(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, n)
}

// Success records a success banner.
func (r *Recorder) Success(message string) {
	r.record(Notification{Kind: KindSuccess, Message: message})
}

// Error records an error banner.
func (r *Recorder) Error(message string) {
	r.record(Notification{Kind: KindError, Message: message})
}

// All returns the banners recorded so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent banner.
func (r *Recorder) Last() (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Notification{}, fmt.Errorf("no notifications recorded")
	}
	return r.events[len(r.events)-1], nil
}
