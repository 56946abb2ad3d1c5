package career

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/shared/metrics"
)

// Service implements the career tools.
type Service struct {
	Attempts AttemptRepo
	Apps     ApplicationSource
}

func NewService(attempts AttemptRepo, apps ApplicationSource) *Service {
	return &Service{Attempts: attempts, Apps: apps}
}

// AnalyzeResume scores resume text. Stateless.
func (s *Service) AnalyzeResume(ctx context.Context, resumeText string) (ResumeAnalysis, error) {
	return ScoreResume(resumeText)
}

// ScoreInterview evaluates a response and persists the attempt. The write
// must succeed for the call to succeed.
func (s *Service) ScoreInterview(ctx context.Context, userID, prompt, response string, durationSeconds *int) (InterviewEvaluation, error) {
	if strings.TrimSpace(prompt) == "" || strings.TrimSpace(response) == "" {
		return InterviewEvaluation{}, ErrInvalidInput
	}

	eval := EvaluateInterviewResponse(response)

	attempt := InterviewAttempt{
		ID:              uuid.NewString(),
		UserID:          userID,
		Prompt:          prompt,
		Response:        response,
		DurationSeconds: durationSeconds,
		Score:           eval.Score,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return InterviewEvaluation{}, err
	}
	metrics.IncInterviewAttempt()
	return eval, nil
}

// Stats recomputes the engagement snapshot from two independent fetches.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	interviews, err := s.Attempts.Aggregate(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	apps, err := s.Apps.Aggregate(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Interviews:      interviews,
		Applications:    apps,
		ConfidencePulse: ConfidencePulse(interviews, apps),
	}, nil
}
