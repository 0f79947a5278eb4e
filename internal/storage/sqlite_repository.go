package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteTimeLayout is fixed width so text order matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the history database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) AppendRun(ctx context.Context, in RunRecord) error {
	if err := validateRun(in); err != nil {
		return err
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = in.EndedAt
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (id, kind, mode, started_at, ended_at, duration_sec, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Kind, in.Mode, nullTime(in.StartedAt), mustTime(in.EndedAt), in.DurationSec, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (RunRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, mode, started_at, ended_at, duration_sec, created_at
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, ErrNotFound
		}
		return RunRecord{}, err
	}
	return run, nil
}

// ListRuns returns the newest runs first.
func (r *SQLiteRepository) ListRuns(ctx context.Context, filter RunListFilter) ([]RunRecord, error) {
	query := `SELECT id, kind, mode, started_at, ended_at, duration_sec, created_at FROM runs`
	args := make([]any, 0, 3)
	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, filter.Kind)
	}
	query += ` ORDER BY ended_at DESC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunRecord, 0)
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SummarizeRuns(ctx context.Context, kind string) (RunSummary, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(duration_sec), 0) FROM runs`
	args := make([]any, 0, 1)
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	var out RunSummary
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&out.Count, &out.TotalSec); err != nil {
		return RunSummary{}, err
	}
	return out, nil
}

func validateRun(in RunRecord) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRun)
	}
	if in.Kind != KindCountdownFinished && in.Kind != KindStopwatchStopped {
		return fmt.Errorf("%w: kind %q", ErrInvalidRun, in.Kind)
	}
	if in.EndedAt.IsZero() {
		return fmt.Errorf("%w: ended_at is required", ErrInvalidRun)
	}
	if in.DurationSec < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidRun)
	}
	return nil
}

func nullTime(v *time.Time) any {
	if v == nil || v.IsZero() {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var out RunRecord
	var started sql.NullString
	var ended string
	var created string
	if err := s.Scan(&out.ID, &out.Kind, &out.Mode, &started, &ended, &out.DurationSec, &created); err != nil {
		return RunRecord{}, err
	}
	startedAt, err := parseNullableTime(started)
	if err != nil {
		return RunRecord{}, err
	}
	endedAt, err := parseRequiredTime(ended)
	if err != nil {
		return RunRecord{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return RunRecord{}, err
	}
	out.StartedAt = startedAt
	out.EndedAt = endedAt
	out.CreatedAt = createdAt
	return out, nil
}
