package career

import (
	"context"
	"database/sql"
)

// PGAttemptRepo is the Postgres implementation of AttemptRepo.
type PGAttemptRepo struct {
	DB *sql.DB
}

func (r *PGAttemptRepo) Create(ctx context.Context, attempt InterviewAttempt) error {
	const query = `
INSERT INTO interview_attempts (id, user_id, prompt, response, duration_seconds, score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.DB.ExecContext(ctx, query,
		attempt.ID,
		attempt.UserID,
		attempt.Prompt,
		attempt.Response,
		attempt.DurationSeconds,
		attempt.Score,
	)
	return err
}

func (r *PGAttemptRepo) Aggregate(ctx context.Context, userID string) (InterviewAggregate, error) {
	const query = `
SELECT count(*), COALESCE(avg(score), 0)
FROM interview_attempts
WHERE user_id = $1`
	var agg InterviewAggregate
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&agg.Count, &agg.AverageScore); err != nil {
		return InterviewAggregate{}, err
	}
	return agg, nil
}

// PGApplicationSource aggregates application rows for the stats endpoint.
type PGApplicationSource struct {
	DB *sql.DB
}

func (s *PGApplicationSource) Aggregate(ctx context.Context, userID string) (ApplicationAggregate, error) {
	const query = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'accepted'),
       count(*) FILTER (WHERE status = 'shortlisted')
FROM applications
WHERE user_id = $1`
	var agg ApplicationAggregate
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(&agg.Total, &agg.Accepted, &agg.Shortlisted); err != nil {
		return ApplicationAggregate{}, err
	}
	return agg, nil
}
