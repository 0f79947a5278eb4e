package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("storage: not found")
	ErrInvalidRun = errors.New("storage: invalid run")
)

type Repository interface {
	AppendRun(ctx context.Context, in RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, error)
	ListRuns(ctx context.Context, filter RunListFilter) ([]RunRecord, error)
	SummarizeRuns(ctx context.Context, kind string) (RunSummary, error)
}
