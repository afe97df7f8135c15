// Package db provides PostgreSQL persistence for extraction jobs.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathieu/brandscope/internal/types"
)

// Store wraps a PostgreSQL connection pool and implements jobs.Store.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the jobs table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS extraction_jobs (
			id         TEXT PRIMARY KEY,
			url        TEXT NOT NULL,
			kind       TEXT NOT NULL,
			status     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			result     JSONB
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure jobs schema: %w", err)
	}
	return nil
}

// CreateJob persists a new pending job record.
func (s *Store) CreateJob(ctx context.Context, job *types.Job) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO extraction_jobs (id, url, kind, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		job.ID, job.URL, string(job.Kind), job.Status, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", job.ID, err)
	}
	return nil
}

// CompleteJob attaches the result to an existing job record. Merge
// semantics: only status, result and updated_at are overwritten.
func (s *Store) CompleteJob(ctx context.Context, id string, result json.RawMessage) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE extraction_jobs
		 SET status = $1, result = $2, updated_at = NOW()
		 WHERE id = $3`,
		types.StatusCompleted, result, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}

// GetJob retrieves a job by id. Returns (nil, nil) when the job does
// not exist.
func (s *Store) GetJob(ctx context.Context, id string) (*types.Job, error) {
	var job types.Job
	var kind string
	err := s.pool.QueryRow(ctx,
		`SELECT id, url, kind, status, created_at, updated_at, result
		 FROM extraction_jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.URL, &kind, &job.Status, &job.CreatedAt, &job.UpdatedAt, &job.Result)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	job.Kind = types.Kind(kind)
	return &job, nil
}
