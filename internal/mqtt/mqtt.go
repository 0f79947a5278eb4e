// Package mqtt publishes completion events to a broker.
package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/model"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "clockd/events"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a completion event to the broker.
	Publish(ev dispatch.Event) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// Payload is the JSON message published per event.
type Payload struct {
	Clockd EventPayload `json:"clockd"`
}

type EventPayload struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Event       string `json:"event"`
	Mode        string `json:"mode"`
	StartedAt   string `json:"started_at,omitempty"`
	DurationSec int    `json:"duration_sec"`
	Duration    string `json:"duration"`
}

// FormatPayload creates the JSON payload for a completion event.
func FormatPayload(ev dispatch.Event) ([]byte, error) {
	inner := EventPayload{
		ID:          ev.ID,
		Timestamp:   ev.At.UTC().Format(time.RFC3339),
		Event:       string(ev.Kind),
		Mode:        ev.Mode,
		DurationSec: ev.DurationSec,
		Duration:    model.FormatHMS(ev.DurationSec),
	}
	if !ev.StartedAt.IsZero() {
		inner.StartedAt = ev.StartedAt.UTC().Format(time.RFC3339)
	}
	return json.Marshal(Payload{Clockd: inner})
}

// Sink adapts a Publisher to the dispatch engine.
type Sink struct {
	Publisher Publisher
}

func (Sink) Name() string { return "mqtt" }

func (s Sink) Deliver(ctx context.Context, ev dispatch.Event) error {
	if s.Publisher == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Publisher.Publish(ev)
}
