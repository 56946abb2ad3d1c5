package admin

import (
	"context"

	"jobboard-backend/internal/chapters"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/users"
)

// MemoryStatsSource computes totals from the in-memory repos.
type MemoryStatsSource struct {
	Users    users.Repo
	Jobs     jobs.Repo
	Chapters chapters.Repo
	// ApplicationStatuses lists every application status for a job.
	ApplicationStatuses func(ctx context.Context, jobID string) ([]string, error)
}

func (s *MemoryStatsSource) Totals(ctx context.Context) (Totals, error) {
	totals := Totals{
		UsersByRole:          map[string]int{},
		JobsByStatus:         map[string]int{},
		ApplicationsByStatus: map[string]int{},
	}

	allUsers, _, err := s.Users.List(ctx, 0, 0)
	if err != nil {
		return Totals{}, err
	}
	for _, user := range allUsers {
		totals.UsersByRole[user.Role]++
	}

	allJobs, _, err := s.Jobs.List(ctx, jobs.Filter{})
	if err != nil {
		return Totals{}, err
	}
	for _, job := range allJobs {
		totals.JobsByStatus[job.Status]++
		if s.ApplicationStatuses != nil {
			statuses, err := s.ApplicationStatuses(ctx, job.ID)
			if err != nil {
				return Totals{}, err
			}
			for _, status := range statuses {
				totals.ApplicationsByStatus[status]++
			}
		}
	}

	allChapters, err := s.Chapters.List(ctx)
	if err != nil {
		return Totals{}, err
	}
	totals.Chapters = len(allChapters)

	return totals, nil
}
