// Package jobs tracks extraction requests as persisted jobs and drives
// the pipeline from job creation to completion.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mathieu/brandscope/internal/monitoring"
	"github.com/mathieu/brandscope/internal/schemas"
	"github.com/mathieu/brandscope/internal/types"
)

// Store persists job records. Implemented by db.Store (PostgreSQL) and
// MemStore.
type Store interface {
	// CreateJob persists a new pending job.
	CreateJob(ctx context.Context, job *types.Job) error
	// CompleteJob attaches the result to an existing job, flips its
	// status to completed and bumps updated_at. Other fields are kept.
	CompleteJob(ctx context.Context, id string, result json.RawMessage) error
	// GetJob returns a job by id, or (nil, nil) when absent.
	GetJob(ctx context.Context, id string) (*types.Job, error)
}

// Extractor runs one extraction. Satisfied by *extract.Pipeline.
type Extractor interface {
	Extract(ctx context.Context, url string, kind types.Kind) types.Result
}

// Orchestrator assigns job ids, persists pending/completed state and
// returns the final structured result. Jobs have no failed state:
// pipeline failures are absorbed into completed results carrying
// high-priority insights. Store write failures are logged but never
// block the result from reaching the caller.
type Orchestrator struct {
	store    Store
	pipeline Extractor
	metrics  *monitoring.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// New builds an Orchestrator. A nil logger falls back to slog.Default;
// a nil metrics disables metering.
func New(store Store, pipeline Extractor, metrics *monitoring.Metrics, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:    store,
		pipeline: pipeline,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one extraction request end to end and returns the result
// together with the completed job record.
func (o *Orchestrator) Run(ctx context.Context, rawURL string, kind types.Kind) (types.Result, *types.Job) {
	started := o.now().UTC()
	logger := o.logger.With("request_id", uuid.NewString(), "url", rawURL, "kind", kind)

	job := &types.Job{
		ID:        types.NewJobID(rawURL, started),
		URL:       rawURL,
		Kind:      kind,
		Status:    types.StatusPending,
		CreatedAt: started,
		UpdatedAt: started,
	}
	if err := o.store.CreateJob(ctx, job); err != nil {
		logger.Error("failed to persist pending job", "job_id", job.ID, "error", err)
	}

	result := o.pipeline.Extract(ctx, rawURL, kind)

	payload, err := json.Marshal(result)
	if err != nil {
		// Result types marshal cleanly by construction; guard anyway.
		logger.Error("failed to marshal extraction result", "job_id", job.ID, "error", err)
		payload = json.RawMessage(`{}`)
	}
	if err := schemas.ValidateResult(kind, payload); err != nil {
		// Violations are diagnostics, never a reason to drop the result.
		logger.Warn("extraction result violates its schema", "job_id", job.ID, "error", err)
	}
	if err := o.store.CompleteJob(ctx, job.ID, payload); err != nil {
		logger.Error("failed to persist completed job", "job_id", job.ID, "error", err)
	}

	job.Status = types.StatusCompleted
	job.Result = payload
	job.UpdatedAt = o.now().UTC()

	o.metrics.ObserveJob(string(kind), o.now().Sub(started).Seconds())
	logger.Info("extraction job completed", "job_id", job.ID,
		"duration", o.now().Sub(started).String())

	return result, job
}

// GetJob exposes job lookup to the delivery layer.
func (o *Orchestrator) GetJob(ctx context.Context, id string) (*types.Job, error) {
	return o.store.GetJob(ctx, id)
}
