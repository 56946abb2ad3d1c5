package applications

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobboard-backend/internal/jobs"
)

// MemoryRepo is an in-memory implementation of Repo. It mirrors the SQL
// transaction by bumping the job counter through the jobs MemoryRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Application
	jobs *jobs.MemoryRepo
}

// NewMemoryRepo constructs a MemoryRepo bound to the in-memory job catalog.
func NewMemoryRepo(jobRepo *jobs.MemoryRepo) *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Application),
		jobs: jobRepo,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	for _, existing := range r.data {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			r.mu.Unlock()
			return ErrDuplicate
		}
	}
	r.data[app.ID] = app
	r.mu.Unlock()

	if r.jobs != nil {
		r.jobs.AdjustApplicationCount(app.JobID, 1)
	}
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, appID string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.data[appID]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]WithJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	apps := make([]Application, 0)
	for _, app := range r.data {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	r.mu.RUnlock()

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})

	out := []WithJob{}
	for _, app := range apps {
		item := WithJob{Application: app}
		if r.jobs != nil {
			if job, err := r.jobs.GetByID(ctx, app.JobID); err == nil {
				item.JobTitle = job.Title
				item.JobCompany = job.Company
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MemoryRepo) ListByJob(ctx context.Context, jobID string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Application{}
	for _, app := range r.data {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, appID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.data[appID]
	if !ok {
		return ErrNotFound
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.data[appID] = app
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, appID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	app, ok := r.data[appID]
	if !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.data, appID)
	r.mu.Unlock()

	if r.jobs != nil {
		r.jobs.AdjustApplicationCount(app.JobID, -1)
	}
	return nil
}
