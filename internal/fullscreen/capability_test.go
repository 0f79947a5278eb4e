package fullscreen

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeVariant struct {
	name      string
	available bool
	refuse    error
	calls     []bool
}

func (f *fakeVariant) Name() string    { return f.name }
func (f *fakeVariant) Available() bool { return f.available }

func (f *fakeVariant) Switch(active bool) (tea.Cmd, error) {
	f.calls = append(f.calls, active)
	if f.refuse != nil {
		return nil, f.refuse
	}
	return nil, nil
}

func TestCapabilityUsesFirstAvailableVariant(t *testing.T) {
	first := &fakeVariant{name: "first", available: false}
	second := &fakeVariant{name: "second", available: true}
	third := &fakeVariant{name: "third", available: true}
	hub := NewHub()
	c := NewCapability(hub, first, second, third)

	v, ok := c.Resolve()
	if !ok || v.Name() != "second" {
		t.Fatalf("expected second variant, got %v", v)
	}

	cmd := c.Toggle(false)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if hub.Active() {
		t.Fatal("state must not change before the command runs")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected publish command to return nil msg, got %T", msg)
	}
	if !hub.Active() {
		t.Fatal("expected hub active after command ran")
	}
	if len(second.calls) != 1 || !second.calls[0] || len(third.calls) != 0 || len(first.calls) != 0 {
		t.Fatalf("unexpected variant calls: first=%v second=%v third=%v", first.calls, second.calls, third.calls)
	}
}

func TestCapabilityNoVariantIsSilentNoop(t *testing.T) {
	c := NewCapability(NewHub(), &fakeVariant{name: "none", available: false})
	if c.Supported() {
		t.Fatal("expected unsupported capability")
	}
	if cmd := c.Toggle(false); cmd != nil {
		t.Fatal("expected nil command when nothing is available")
	}
	var nilCap *Capability
	if cmd := nilCap.Toggle(false); cmd != nil {
		t.Fatal("expected nil command from nil capability")
	}
}

func TestCapabilityRefusalLeavesStateUnchanged(t *testing.T) {
	refuse := errors.New("denied")
	v := &fakeVariant{name: "picky", available: true, refuse: refuse}
	hub := NewHub()
	c := NewCapability(hub, v)

	cmd := c.Toggle(false)
	if cmd == nil {
		t.Fatal("expected refusal command")
	}
	msg, ok := cmd().(RefusedMsg)
	if !ok {
		t.Fatal("expected RefusedMsg")
	}
	if !errors.Is(msg.Err, refuse) || msg.Variant != "picky" || !msg.Active {
		t.Fatalf("unexpected refusal: %+v", msg)
	}
	if hub.Active() {
		t.Fatal("expected state unchanged after refusal")
	}
}

func TestCapabilityExitUsesSourceAndEnteringVariant(t *testing.T) {
	first := &fakeVariant{name: "first", available: true}
	second := &fakeVariant{name: "second", available: true}
	hub := NewHub()
	sub := hub.Subscribe(2)
	defer sub.Close()
	c := NewCapability(hub, first, second)

	c.Request(true, "")()
	n := <-sub.C()
	if !n.Active || n.Source != "first" {
		t.Fatalf("unexpected enter notification: %+v", n)
	}

	first.available = false
	second.available = true
	c.Exit(SourceEscape)()
	n = <-sub.C()
	if n.Active || n.Source != SourceEscape {
		t.Fatalf("unexpected exit notification: %+v", n)
	}
	if len(second.calls) != 1 || second.calls[0] {
		t.Fatalf("expected fallback variant to handle exit, calls=%v", second.calls)
	}
}

func TestBuiltinVariantsAvailability(t *testing.T) {
	alt := AltScreen{IsTerminal: func() bool { return false }}
	if alt.Available() {
		t.Fatal("expected altscreen unavailable off a terminal")
	}
	if _, err := alt.Switch(true); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	alt.IsTerminal = func() bool { return true }
	if cmd, err := alt.Switch(true); err != nil || cmd == nil {
		t.Fatalf("expected enter command, got cmd=%v err=%v", cmd, err)
	}

	inline := Inline{Term: func() string { return "dumb" }}
	if inline.Available() {
		t.Fatal("expected inline unavailable on dumb terminal")
	}
	inline.Term = func() string { return "xterm-256color" }
	if cmd, err := inline.Switch(false); err != nil || cmd == nil {
		t.Fatalf("expected clear command, got cmd=%v err=%v", cmd, err)
	}
	if (Inline{}).Available() || (AltScreen{}).Available() {
		t.Fatal("expected zero-value variants to be unavailable")
	}
}
