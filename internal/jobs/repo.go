package jobs

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("job not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	Update(ctx context.Context, job Job) error
	UpdateStatus(ctx context.Context, jobID, status string) error
	Delete(ctx context.Context, jobID string) error
	List(ctx context.Context, filter Filter) ([]Job, int, error)
}
