package career

import "time"

// InterviewAttempt is one persisted mock-interview practice record.
// Attempts are immutable once written and removed only by user deletion.
type InterviewAttempt struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Prompt          string    `json:"prompt"`
	Response        string    `json:"response"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	Score           int       `json:"score"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InterviewAggregate summarizes a user's practice history.
type InterviewAggregate struct {
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
}

// ApplicationAggregate summarizes a user's application activity.
type ApplicationAggregate struct {
	Total       int `json:"total"`
	Accepted    int `json:"accepted"`
	Shortlisted int `json:"shortlisted"`
}

// Stats is the derived engagement snapshot. It is recomputed on every
// request; the two source aggregates are fetched independently, so the
// snapshot may lag a concurrent write by one record.
type Stats struct {
	Interviews      InterviewAggregate   `json:"interviews"`
	Applications    ApplicationAggregate `json:"applications"`
	ConfidencePulse int                  `json:"confidencePulse"`
}
