package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrTokenInvalid   = errors.New("reset token invalid or expired")
)

type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, user User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	List(ctx context.Context, limit, offset int) ([]User, int, error)
	Delete(ctx context.Context, userID string) error

	CreateResetToken(ctx context.Context, token ResetToken) error
	// ConsumeResetToken atomically marks an unused, unexpired token as used
	// and returns its user ID. Returns ErrTokenInvalid otherwise.
	ConsumeResetToken(ctx context.Context, token string, now time.Time) (string, error)
}
