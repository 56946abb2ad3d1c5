package applications

import "time"

const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// ValidStatus reports whether status is a known application status.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

type Application struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	UserID     string    `json:"userId"`
	CoverNote  string    `json:"coverNote,omitempty"`
	ResumeText string    `json:"resumeText,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// WithJob pairs an application with catalog context for listings.
type WithJob struct {
	Application
	JobTitle   string `json:"jobTitle"`
	JobCompany string `json:"jobCompany"`
}
