package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Job)}
}

func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[job.ID] = job
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.data[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

func (r *MemoryRepo) Update(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[job.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = job.Title
	existing.Company = job.Company
	existing.Location = job.Location
	existing.Description = job.Description
	existing.SalaryRange = job.SalaryRange
	existing.JobType = job.JobType
	existing.UpdatedAt = time.Now().UTC()
	r.data[job.ID] = existing
	return nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, jobID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.data[jobID]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	job.UpdatedAt = time.Now().UTC()
	r.data[jobID] = job
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[jobID]; !ok {
		return ErrNotFound
	}
	delete(r.data, jobID)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Job, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	matched := make([]Job, 0, len(r.data))
	for _, job := range r.data {
		if matchesFilter(job, filter) {
			matched = append(matched, job)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Job{}, total, nil
	}
	end := total
	if filter.Limit > 0 && offset+filter.Limit < end {
		end = offset + filter.Limit
	}
	return matched[offset:end], total, nil
}

func matchesFilter(job Job, filter Filter) bool {
	if q := strings.TrimSpace(filter.Query); q != "" {
		lq := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(job.Title), lq) &&
			!strings.Contains(strings.ToLower(job.Company), lq) &&
			!strings.Contains(strings.ToLower(job.Description), lq) {
			return false
		}
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(loc)) {
			return false
		}
	}
	if jt := strings.TrimSpace(filter.JobType); jt != "" && job.JobType != jt {
		return false
	}
	return true
}

// AdjustApplicationCount bumps the denormalized counter, flooring at zero.
// Used by the in-memory applications repo to mirror the SQL transaction.
func (r *MemoryRepo) AdjustApplicationCount(jobID string, delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.data[jobID]
	if !ok {
		return
	}
	job.ApplicationCount += delta
	if job.ApplicationCount < 0 {
		job.ApplicationCount = 0
	}
	r.data[jobID] = job
}
