// Package fullscreen mirrors the terminal's fullscreen presentation into
// widget state.
//
// Requests go through a Capability, which picks the first available Variant.
// The resulting state change is only observable as a Notification delivered
// to Hub subscribers, whatever triggered it.
package fullscreen

import (
	"sync"
	"time"
)

// SourceEscape marks an exit triggered by the escape key rather than a toggle.
const SourceEscape = "escape"

// Notification reports that the fullscreen state changed.
type Notification struct {
	Active bool
	Source string
	At     time.Time
}

// Hub fans notifications out to subscribers. Repeated notifications for the
// state the hub already holds are swallowed.
type Hub struct {
	mu     sync.Mutex
	active bool
	subs   map[int]chan Notification
	nextID int
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Notification)}
}

// Subscription is one listener registered with a Hub.
type Subscription struct {
	hub  *Hub
	id   int
	ch   chan Notification
	once sync.Once
}

func (s *Subscription) C() <-chan Notification {
	return s.ch
}

// Close unregisters the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.hub.unsubscribe(s.id)
	})
}

// Subscribe registers a listener. A closed hub returns a subscription whose
// channel is already closed.
func (h *Hub) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Notification, buffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	if h.closed {
		close(ch)
	} else {
		h.subs[id] = ch
	}
	return &Subscription{hub: h, id: id, ch: ch}
}

// Publish records the new state and delivers it. It reports whether the
// notification changed state; duplicates are not delivered.
func (h *Hub) Publish(n Notification) bool {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || n.Active == h.active {
		return false
	}
	h.active = n.Active
	for _, ch := range h.subs {
		deliverLatest(ch, n)
	}
	return true
}

func (h *Hub) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Subscribers is the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscription. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(ch)
}

// deliverLatest never blocks: when the buffer is full the oldest pending
// notification is discarded so the newest state always gets through.
func deliverLatest(ch chan Notification, n Notification) {
	for {
		select {
		case ch <- n:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
