package fullscreen

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnavailable = errors.New("fullscreen: variant unavailable")

// Variant is one way of presenting fullscreen on the current terminal.
type Variant interface {
	Name() string
	Available() bool
	// Switch returns the command that performs the transition, or an error
	// when the variant refuses it.
	Switch(active bool) (tea.Cmd, error)
}

// RefusedMsg is emitted when the resolved variant refused a transition.
// Fullscreen state is unchanged.
type RefusedMsg struct {
	Variant string
	Active  bool
	Err     error
}

// Capability unifies the variants behind one ordered fallback list.
type Capability struct {
	mu       sync.Mutex
	hub      *Hub
	variants []Variant
	entered  Variant
	now      func() time.Time
}

func NewCapability(hub *Hub, variants ...Variant) *Capability {
	return &Capability{hub: hub, variants: variants, now: time.Now}
}

func (c *Capability) Hub() *Hub {
	return c.hub
}

// Resolve returns the first available variant.
func (c *Capability) Resolve() (Variant, bool) {
	for _, v := range c.variants {
		if v != nil && v.Available() {
			return v, true
		}
	}
	return nil, false
}

func (c *Capability) Supported() bool {
	_, ok := c.Resolve()
	return ok
}

// Toggle requests entry when current is false and exit otherwise. It returns
// nil when no variant is available.
func (c *Capability) Toggle(current bool) tea.Cmd {
	return c.Request(!current, "")
}

// Exit requests leaving fullscreen on behalf of source.
func (c *Capability) Exit(source string) tea.Cmd {
	return c.Request(false, source)
}

// Request builds the command for a transition. The state change is published
// to the hub only after the variant's own command has run.
func (c *Capability) Request(active bool, source string) tea.Cmd {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	v, ok := c.pickLocked(active)
	if !ok {
		c.mu.Unlock()
		return nil
	}
	cmd, err := v.Switch(active)
	if err != nil {
		c.mu.Unlock()
		name := v.Name()
		return func() tea.Msg { return RefusedMsg{Variant: name, Active: active, Err: err} }
	}
	if active {
		c.entered = v
	} else {
		c.entered = nil
	}
	c.mu.Unlock()

	if source == "" {
		source = v.Name()
	}
	hub, now := c.hub, c.now
	publish := func() tea.Msg {
		hub.Publish(Notification{Active: active, Source: source, At: now()})
		return nil
	}
	if cmd == nil {
		return publish
	}
	return tea.Sequence(cmd, publish)
}

// pickLocked exits through the variant that entered, when it is still usable.
func (c *Capability) pickLocked(active bool) (Variant, bool) {
	if !active && c.entered != nil && c.entered.Available() {
		return c.entered, true
	}
	return c.Resolve()
}
