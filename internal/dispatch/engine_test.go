package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type recordingSink struct {
	name string
	err  error

	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *recordingSink) delivered() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func testEvent(id string) Event {
	return Event{
		ID:          id,
		Kind:        KindCountdownFinished,
		Mode:        "countdown",
		StartedAt:   time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		At:          time.Date(2026, 10, 16, 9, 0, 5, 0, time.UTC),
		DurationSec: 5,
	}
}

func TestEngineDeliversToEverySinkInOrder(t *testing.T) {
	first := &recordingSink{name: "first"}
	second := &recordingSink{name: "second"}
	engine := NewEngine(8, first, nil, second)
	engine.Start()
	defer engine.Stop()

	if got := engine.SinkNames(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected sinks: %v", got)
	}
	if err := engine.Enqueue(testEvent("run-1")); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	a := waitResult(t, engine.C(), time.Second)
	b := waitResult(t, engine.C(), time.Second)
	if a.Sink != "first" || b.Sink != "second" || a.EventID != "run-1" || a.Err != nil || b.Err != nil {
		t.Fatalf("unexpected results: %+v %+v", a, b)
	}
	if len(first.delivered()) != 1 || len(second.delivered()) != 1 {
		t.Fatalf("expected one delivery per sink")
	}
}

func TestEngineReportsSinkErrors(t *testing.T) {
	boom := errors.New("broker down")
	engine := NewEngine(4, &recordingSink{name: "mqtt", err: boom})
	engine.Start()
	defer engine.Stop()

	if err := engine.Enqueue(testEvent("run-2")); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	res := waitResult(t, engine.C(), time.Second)
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected wrapped sink error, got %v", res.Err)
	}
}

func TestEnqueueValidatesEvent(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Enqueue(Event{Kind: KindCountdownFinished, At: time.Now()}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for missing id, got %v", err)
	}
	if err := engine.Enqueue(Event{ID: "x", Kind: "bogus", At: time.Now()}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for bad kind, got %v", err)
	}
	if err := engine.Enqueue(Event{ID: "x", Kind: KindStopwatchStopped}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for zero time, got %v", err)
	}
}

func TestEngineStopFlushesQueueAndRejectsLateEvents(t *testing.T) {
	sink := &recordingSink{name: "history"}
	engine := NewEngine(16, sink)
	engine.Start()
	for i := 0; i < 5; i++ {
		if err := engine.Enqueue(testEvent(fmt.Sprintf("run-%d", i))); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	engine.Stop()

	if got := len(sink.delivered()); got != 5 {
		t.Fatalf("expected 5 deliveries after stop, got %d", got)
	}
	if err := engine.Enqueue(testEvent("late")); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if _, ok := <-drainAll(engine.C()); ok {
		t.Fatal("expected result channel closed after stop")
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1, &recordingSink{name: "a"}, &recordingSink{name: "b"})
	engine.Start()
	defer engine.Stop()

	for i := 0; i < 10; i++ {
		if err := engine.Enqueue(testEvent(fmt.Sprintf("evt-%d", i))); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	deadline := time.Now().Add(time.Second)
	for engine.Dropped() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped results > 0, got %d", engine.Dropped())
	}
}

func TestEngineConcurrentEnqueue(t *testing.T) {
	sink := &recordingSink{name: "count"}
	engine := NewEngine(4096, sink)
	engine.Start()

	const workers = 8
	const perWorker = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := engine.Enqueue(testEvent(fmt.Sprintf("w%d-%d", w, i))); err != nil {
					t.Errorf("enqueue failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	engine.Stop()

	if got := len(sink.delivered()); got != workers*perWorker {
		t.Fatalf("unexpected delivered count: got=%d want=%d", got, workers*perWorker)
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with a large buffer, got=%d", engine.Dropped())
	}
}

type slowNotifier struct {
	delay time.Duration
}

func (n slowNotifier) Send(ctx context.Context, _, _ string) error {
	select {
	case <-time.After(n.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestEngineTimesOutSlowDesktopNotifier(t *testing.T) {
	history := &recordingSink{name: "history"}
	engine := NewEngine(4, DesktopSink{Notifier: slowNotifier{delay: 2 * time.Second}}, history)
	engine.timeout = 50 * time.Millisecond
	engine.Start()
	defer engine.Stop()

	start := time.Now()
	if err := engine.Enqueue(testEvent("run-slow")); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	desktop := waitResult(t, engine.C(), time.Second)
	if desktop.Sink != "desktop" || !errors.Is(desktop.Err, context.DeadlineExceeded) {
		t.Fatalf("expected desktop deadline error, got %+v", desktop)
	}
	next := waitResult(t, engine.C(), time.Second)
	if next.Sink != "history" || next.Err != nil {
		t.Fatalf("later sinks should still be delivered, got %+v", next)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("slow notifier held the loop for %v", elapsed)
	}
}

func TestDescribeEvents(t *testing.T) {
	title, body := Describe(testEvent("d"))
	if title != "Countdown finished!" || body != "00:00:05 countdown completed" {
		t.Fatalf("unexpected countdown description: %q / %q", title, body)
	}
	ev := testEvent("s")
	ev.Kind = KindStopwatchStopped
	ev.DurationSec = 62
	title, body = Describe(ev)
	if title != "Timer stopped" || body != "segment of 00:01:02 recorded" {
		t.Fatalf("unexpected stopwatch description: %q / %q", title, body)
	}
}

func waitResult(t *testing.T, ch <-chan Result, timeout time.Duration) Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for result")
		return Result{}
	}
}

func drainAll(ch <-chan Result) <-chan Result {
	for range ch {
	}
	return ch
}
