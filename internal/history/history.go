package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLimit is returned when RecentRuns is asked for a non-positive
// number of rows.
var ErrInvalidLimit = errors.New("limit must be >= 1")

// Run is one recorded ripgrep invocation.
type Run struct {
	ID          int64
	Pattern     string
	SearchPath  string
	CommandLine string
	ExitCode    int
	MatchCount  int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Stats summarizes the recorded runs.
type Stats struct {
	TotalRuns    int64
	TotalMatches int64
	LastRunAt    time.Time // zero when no runs are recorded
}

// Store persists and queries run records.
type Store interface {
	RecordRun(ctx context.Context, run *Run) error
	RecentRuns(ctx context.Context, limit int) ([]*Run, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore opens (or creates) the history database at dbPath and
// applies any pending migrations. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// RecordRun inserts one run record and fills in its ID and CreatedAt.
func (s *SQLiteStore) RecordRun(ctx context.Context, run *Run) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (pattern, search_path, command_line, exit_code, match_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Pattern, run.SearchPath, run.CommandLine, run.ExitCode,
		run.MatchCount, run.Duration.Milliseconds(), now,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run ID: %w", err)
	}
	run.ID = id
	run.CreatedAt = now
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *SQLiteStore) RecentRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pattern, search_path, command_line, exit_code, match_count, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		var run Run
		var durationMs int64
		if err := rows.Scan(&run.ID, &run.Pattern, &run.SearchPath, &run.CommandLine,
			&run.ExitCode, &run.MatchCount, &durationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// Stats returns aggregate counts over all recorded runs.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(match_count), 0)
		FROM runs`).Scan(&stats.TotalRuns, &stats.TotalMatches)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}

	var lastRun time.Time
	err = s.db.QueryRowContext(ctx, `
		SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&lastRun)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no runs yet, LastRunAt stays zero
	case err != nil:
		return nil, fmt.Errorf("failed to query last run: %w", err)
	default:
		stats.LastRunAt = lastRun
	}
	return &stats, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
