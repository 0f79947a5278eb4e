package storage

import "time"

const (
	KindCountdownFinished = "countdown_finished"
	KindStopwatchStopped  = "stopwatch_stopped"
)

// RunRecord is one finished countdown or stopped stopwatch segment.
// Records are append-only and never used to restore widget state.
type RunRecord struct {
	ID          string
	Kind        string
	Mode        string
	StartedAt   *time.Time
	EndedAt     time.Time
	DurationSec int
	CreatedAt   time.Time
}

type RunListFilter struct {
	Kind   string
	Limit  int
	Offset int
}

type RunSummary struct {
	Count    int
	TotalSec int
}
