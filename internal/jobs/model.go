package jobs

import "time"

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// ValidStatus reports whether status is a known job status.
func ValidStatus(status string) bool {
	return status == StatusOpen || status == StatusClosed
}

type Job struct {
	ID               string    `json:"id"`
	PosterID         string    `json:"posterId"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location,omitempty"`
	Description      string    `json:"description"`
	SalaryRange      string    `json:"salaryRange,omitempty"`
	JobType          string    `json:"jobType,omitempty"`
	Status           string    `json:"status"`
	ApplicationCount int       `json:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Filter narrows job listings.
type Filter struct {
	Query    string
	Location string
	JobType  string
	Limit    int
	Offset   int
}
