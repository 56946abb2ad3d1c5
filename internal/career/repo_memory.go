package career

import (
	"context"
	"sync"

	"jobboard-backend/internal/applications"
)

// MemoryAttemptRepo is an in-memory implementation of AttemptRepo.
type MemoryAttemptRepo struct {
	mu   sync.RWMutex
	data map[string][]InterviewAttempt // userId -> attempts
}

// NewMemoryAttemptRepo constructs a MemoryAttemptRepo.
func NewMemoryAttemptRepo() *MemoryAttemptRepo {
	return &MemoryAttemptRepo{data: make(map[string][]InterviewAttempt)}
}

func (r *MemoryAttemptRepo) Create(ctx context.Context, attempt InterviewAttempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[attempt.UserID] = append(r.data[attempt.UserID], attempt)
	return nil
}

func (r *MemoryAttemptRepo) Aggregate(ctx context.Context, userID string) (InterviewAggregate, error) {
	if err := ctx.Err(); err != nil {
		return InterviewAggregate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempts := r.data[userID]
	agg := InterviewAggregate{Count: len(attempts)}
	if agg.Count == 0 {
		return agg, nil
	}
	sum := 0
	for _, attempt := range attempts {
		sum += attempt.Score
	}
	agg.AverageScore = float64(sum) / float64(agg.Count)
	return agg, nil
}

// MemoryApplicationSource adapts the in-memory applications repo.
type MemoryApplicationSource struct {
	Apps *applications.MemoryRepo
}

func (s *MemoryApplicationSource) Aggregate(ctx context.Context, userID string) (ApplicationAggregate, error) {
	listed, err := s.Apps.ListByUser(ctx, userID)
	if err != nil {
		return ApplicationAggregate{}, err
	}
	agg := ApplicationAggregate{Total: len(listed)}
	for _, app := range listed {
		switch app.Status {
		case applications.StatusAccepted:
			agg.Accepted++
		case applications.StatusShortlisted:
			agg.Shortlisted++
		}
	}
	return agg, nil
}
