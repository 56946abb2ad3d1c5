package applications

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("already applied to this job")
)

type Repo interface {
	// Create inserts the application and increments the job's denormalized
	// counter in one transaction. Returns ErrDuplicate when the (job, user)
	// pair already exists.
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, appID string) (Application, error)
	ListByUser(ctx context.Context, userID string) ([]WithJob, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, appID, status string) error
	// Delete removes the application and decrements the job counter, floored
	// at zero, in one transaction.
	Delete(ctx context.Context, appID string) error
}
