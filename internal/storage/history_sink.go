package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/clockd/internal/dispatch"
)

// HistorySink appends delivered completion events to the run log.
type HistorySink struct {
	Repo Repository
	Now  func() time.Time
}

func (HistorySink) Name() string { return "history" }

func (s HistorySink) Deliver(ctx context.Context, ev dispatch.Event) error {
	if s.Repo == nil {
		return nil
	}
	// Redelivered events are recorded once.
	if _, err := s.Repo.GetRun(ctx, ev.ID); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.Repo.AppendRun(ctx, RunFromEvent(ev, s.now()))
}

func (s HistorySink) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func RunFromEvent(ev dispatch.Event, createdAt time.Time) RunRecord {
	run := RunRecord{
		ID:          ev.ID,
		Kind:        string(ev.Kind),
		Mode:        ev.Mode,
		EndedAt:     ev.At,
		DurationSec: ev.DurationSec,
		CreatedAt:   createdAt,
	}
	if !ev.StartedAt.IsZero() {
		started := ev.StartedAt
		run.StartedAt = &started
	}
	return run
}
