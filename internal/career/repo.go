package career

import (
	"context"
	"errors"
)

var ErrInvalidInput = errors.New("invalid input")

// AttemptRepo stores interview practice attempts.
type AttemptRepo interface {
	Create(ctx context.Context, attempt InterviewAttempt) error
	Aggregate(ctx context.Context, userID string) (InterviewAggregate, error)
}

// ApplicationSource reports a user's application activity. Implemented over
// the applications store; career only ever reads aggregates from it.
type ApplicationSource interface {
	Aggregate(ctx context.Context, userID string) (ApplicationAggregate, error)
}
