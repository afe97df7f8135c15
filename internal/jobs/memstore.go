package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mathieu/brandscope/internal/types"
)

// MemStore is an in-memory Store used in tests and in deployments
// without a database.
type MemStore struct {
	mu   sync.RWMutex
	jobs map[string]*types.Job
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{jobs: make(map[string]*types.Job)}
}

// CreateJob implements Store.
func (s *MemStore) CreateJob(_ context.Context, job *types.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

// CompleteJob implements Store with merge semantics: only status, result
// and updated_at change.
func (s *MemStore) CompleteJob(_ context.Context, id string, result json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job %s not found", id)
	}
	job.Status = types.StatusCompleted
	job.Result = result
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// GetJob implements Store.
func (s *MemStore) GetJob(_ context.Context, id string) (*types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, exists := s.jobs[id]
	if !exists {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}
