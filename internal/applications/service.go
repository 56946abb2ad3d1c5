package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/users"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobClosed    = errors.New("job is not accepting applications")
	ErrForbidden    = errors.New("not allowed")
)

// Service implements the application lifecycle.
type Service struct {
	Repo     Repo
	Jobs     jobs.Repo
	Users    users.Repo
	Notifier notify.Notifier
}

func NewService(repo Repo, jobRepo jobs.Repo, userRepo users.Repo, notifier notify.Notifier) *Service {
	return &Service{Repo: repo, Jobs: jobRepo, Users: userRepo, Notifier: notifier}
}

// Apply submits an application to an open job and notifies the poster.
func (s *Service) Apply(ctx context.Context, jobID, userID, coverNote, resumeText string) (Application, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	if job.Status != jobs.StatusOpen {
		return Application{}, ErrJobClosed
	}

	now := time.Now().UTC()
	app := Application{
		ID:         uuid.NewString(),
		JobID:      jobID,
		UserID:     userID,
		CoverNote:  strings.TrimSpace(coverNote),
		ResumeText: strings.TrimSpace(resumeText),
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}

	metrics.IncApplicationSubmitted()
	s.notifyPoster(ctx, job, userID)
	return app, nil
}

// ListMine returns the caller's applications with job context.
func (s *Service) ListMine(ctx context.Context, userID string) ([]WithJob, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ListForJob returns applications for a job the caller is allowed to review.
func (s *Service) ListForJob(ctx context.Context, jobID, callerID, callerRole string) ([]Application, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != callerID && callerRole != users.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.Repo.ListByJob(ctx, jobID)
}

// SetStatus moves an application to any status in the enum. Transitions are
// deliberately unrestricted so posters can correct earlier decisions.
func (s *Service) SetStatus(ctx context.Context, appID, callerID, callerRole, status string) (Application, error) {
	if !ValidStatus(status) {
		return Application{}, ErrInvalidInput
	}
	app, err := s.Repo.GetByID(ctx, appID)
	if err != nil {
		return Application{}, err
	}
	job, err := s.Jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return Application{}, err
	}
	if job.PosterID != callerID && callerRole != users.RoleAdmin {
		return Application{}, ErrForbidden
	}
	if err := s.Repo.UpdateStatus(ctx, appID, status); err != nil {
		return Application{}, err
	}

	s.notifyApplicant(ctx, app.UserID, job.Title, status)

	app.Status = status
	return app, nil
}

// Withdraw deletes the caller's own application.
func (s *Service) Withdraw(ctx context.Context, appID, callerID string) error {
	app, err := s.Repo.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if app.UserID != callerID {
		return ErrForbidden
	}
	if err := s.Repo.Delete(ctx, appID); err != nil {
		return err
	}
	metrics.IncApplicationWithdrawn()
	return nil
}

func (s *Service) notifyPoster(ctx context.Context, job jobs.Job, applicantID string) {
	if s.Users == nil {
		return
	}
	poster, err := s.Users.GetByID(ctx, job.PosterID)
	if err != nil {
		return
	}
	applicantName := "A candidate"
	if applicant, err := s.Users.GetByID(ctx, applicantID); err == nil {
		applicantName = applicant.FullName
	}
	subject, body := notify.ApplicationReceived(job.Title, applicantName)
	notify.FireAndForget(s.Notifier, poster.Email, subject, body)
}

func (s *Service) notifyApplicant(ctx context.Context, applicantID, jobTitle, status string) {
	if s.Users == nil {
		return
	}
	applicant, err := s.Users.GetByID(ctx, applicantID)
	if err != nil {
		return
	}
	subject, body := notify.ApplicationStatusChanged(jobTitle, status)
	notify.FireAndForget(s.Notifier, applicant.Email, subject, body)
}
