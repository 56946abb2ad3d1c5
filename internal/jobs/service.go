package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/users"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements job catalog operations.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Input carries the mutable job fields.
type Input struct {
	Title       string
	Company     string
	Location    string
	Description string
	SalaryRange string
	JobType     string
}

func (in *Input) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	in.SalaryRange = strings.TrimSpace(in.SalaryRange)
	in.JobType = strings.TrimSpace(in.JobType)
	if in.Title == "" || in.Company == "" || in.Description == "" {
		return ErrInvalidInput
	}
	return nil
}

// Create posts a new open job owned by posterID.
func (s *Service) Create(ctx context.Context, posterID string, in Input) (Job, error) {
	if err := in.normalize(); err != nil {
		return Job{}, err
	}
	now := time.Now().UTC()
	job := Job{
		ID:          uuid.NewString(),
		PosterID:    posterID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Description: in.Description,
		SalaryRange: in.SalaryRange,
		JobType:     in.JobType,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	metrics.IncJobPosted()
	return job, nil
}

// Get returns one job.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	return s.Repo.GetByID(ctx, jobID)
}

// Update replaces the mutable fields. Only the owning poster or an admin may call it.
func (s *Service) Update(ctx context.Context, jobID, callerID, callerRole string, in Input) (Job, error) {
	if err := in.normalize(); err != nil {
		return Job{}, err
	}
	job, err := s.authorize(ctx, jobID, callerID, callerRole)
	if err != nil {
		return Job{}, err
	}
	job.Title = in.Title
	job.Company = in.Company
	job.Location = in.Location
	job.Description = in.Description
	job.SalaryRange = in.SalaryRange
	job.JobType = in.JobType
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, jobID)
}

// SetStatus opens or closes a job.
func (s *Service) SetStatus(ctx context.Context, jobID, callerID, callerRole, status string) (Job, error) {
	if !ValidStatus(status) {
		return Job{}, ErrInvalidInput
	}
	if _, err := s.authorize(ctx, jobID, callerID, callerRole); err != nil {
		return Job{}, err
	}
	if err := s.Repo.UpdateStatus(ctx, jobID, status); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, jobID)
}

// Delete removes a job and, by cascade, its applications.
func (s *Service) Delete(ctx context.Context, jobID, callerID, callerRole string) error {
	if _, err := s.authorize(ctx, jobID, callerID, callerRole); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, jobID)
}

// List pages through jobs matching filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]Job, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.Repo.List(ctx, filter)
}

// ErrForbidden is returned when the caller does not own the job.
var ErrForbidden = errForbidden{}

type errForbidden struct{}

func (errForbidden) Error() string { return "not the job owner" }

func (s *Service) authorize(ctx context.Context, jobID, callerID, callerRole string) (Job, error) {
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if job.PosterID != callerID && callerRole != users.RoleAdmin {
		return Job{}, ErrForbidden
	}
	return job, nil
}
