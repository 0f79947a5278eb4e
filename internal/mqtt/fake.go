package mqtt

import (
	"sync"

	"github.com/sandeepkv93/clockd/internal/dispatch"
)

// FakePublisher records published events for test assertions.
// Delivery runs on the dispatch goroutine, so access is locked.
type FakePublisher struct {
	mu sync.Mutex

	events   []dispatch.Event
	payloads [][]byte

	// PublishError, if set, will be returned by Publish.
	PublishError error

	closed    bool
	connected bool
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{connected: true}
}

func (f *FakePublisher) Publish(ev dispatch.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishError != nil {
		return f.PublishError
	}
	payload, err := FormatPayload(ev)
	if err != nil {
		return err
	}
	f.events = append(f.events, ev)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *FakePublisher) Events() []dispatch.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dispatch.Event(nil), f.events...)
}

func (f *FakePublisher) Payloads() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.payloads...)
}

func (f *FakePublisher) Close() error {
	f.mu.Lock()
	f.closed = true
	f.connected = false
	f.mu.Unlock()
	return nil
}

func (f *FakePublisher) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *FakePublisher) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}
