package admin

import (
	"context"
	"errors"

	"jobboard-backend/internal/users"
)

// ErrSelfDelete is returned when an admin tries to delete their own account.
var ErrSelfDelete = errors.New("admins cannot delete themselves")

// Service implements the admin console operations.
type Service struct {
	Stats StatsSource
	Users users.Repo
}

func NewService(stats StatsSource, userRepo users.Repo) *Service {
	return &Service{Stats: stats, Users: userRepo}
}

// Totals returns the platform aggregate view.
func (s *Service) Totals(ctx context.Context) (Totals, error) {
	return s.Stats.Totals(ctx)
}

// ListUsers pages through all accounts.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]users.User, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.Users.List(ctx, limit, offset)
}

// DeleteUser removes an account; the schema cascades applications,
// memberships, posts, and interview attempts.
func (s *Service) DeleteUser(ctx context.Context, targetID, callerID string) error {
	if targetID == callerID {
		return ErrSelfDelete
	}
	return s.Users.Delete(ctx, targetID)
}
