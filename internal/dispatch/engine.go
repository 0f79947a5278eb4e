// Package dispatch delivers completion events to I/O sinks off the UI
// goroutine.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidEvent = errors.New("dispatch: invalid event")
	ErrStopped      = errors.New("dispatch: engine stopped")
)

type Kind string

const (
	KindCountdownFinished Kind = "countdown_finished"
	KindStopwatchStopped  Kind = "stopwatch_stopped"
)

func (k Kind) IsValid() bool {
	return k == KindCountdownFinished || k == KindStopwatchStopped
}

// Event is one completed countdown run or stopped stopwatch segment.
type Event struct {
	ID          string
	Kind        Kind
	Mode        string
	StartedAt   time.Time
	At          time.Time
	DurationSec int
}

func (ev Event) Validate() error {
	if strings.TrimSpace(ev.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidEvent)
	}
	if !ev.Kind.IsValid() {
		return fmt.Errorf("%w: kind %q", ErrInvalidEvent, ev.Kind)
	}
	if ev.At.IsZero() {
		return fmt.Errorf("%w: at is required", ErrInvalidEvent)
	}
	if ev.DurationSec < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidEvent)
	}
	return nil
}

// Sink receives delivered events.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, ev Event) error
}

// Result reports the outcome of one delivery to one sink.
type Result struct {
	EventID string
	Kind    Kind
	Sink    string
	Err     error
}

const defaultDeliveryTimeout = 5 * time.Second

type Engine struct {
	mu      sync.Mutex
	queue   []Event
	sinks   []Sink
	out     chan Result
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	timeout time.Duration
}

func NewEngine(bufferSize int, sinks ...Sink) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Engine{
		queue:   make([]Event, 0),
		sinks:   kept,
		out:     make(chan Result, bufferSize),
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		timeout: defaultDeliveryTimeout,
	}
}

// C yields delivery results. It is closed after Stop.
func (e *Engine) C() <-chan Result {
	return e.out
}

// SinkNames lists the configured sinks in delivery order.
func (e *Engine) SinkNames() []string {
	names := make([]string, 0, len(e.sinks))
	for _, s := range e.sinks {
		names = append(names, s.Name())
	}
	return names
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop delivers whatever is still queued, then shuts the loop down.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Enqueue never blocks on sink I/O.
func (e *Engine) Enqueue(ev Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	e.queue = append(e.queue, ev)
	e.signalWakeup()
	return nil
}

// Dropped counts results discarded because nobody was reading C.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	for {
		select {
		case <-e.wakeup:
			e.deliver(e.drain())
		case <-e.stopCh:
			e.deliver(e.drain())
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) drain() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.queue
	e.queue = make([]Event, 0)
	return out
}

func (e *Engine) deliver(events []Event) {
	for _, ev := range events {
		for _, sink := range e.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
			err := sink.Deliver(ctx, ev)
			cancel()
			if err != nil {
				err = fmt.Errorf("%s: %w", sink.Name(), err)
			}
			e.emit(Result{EventID: ev.ID, Kind: ev.Kind, Sink: sink.Name(), Err: err})
		}
	}
}

func (e *Engine) emit(res Result) {
	select {
	case e.out <- res:
	default:
		atomic.AddUint64(&e.dropped, 1)
	}
}
