package chapters

import "time"

const (
	MemberPending  = "pending"
	MemberApproved = "approved"

	RoleMember = "member"
	RoleLead   = "lead"
)

type Chapter struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Region      string    `json:"region,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Membership struct {
	ChapterID string    `json:"chapterId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

type Post struct {
	ID        string    `json:"id"`
	ChapterID string    `json:"chapterId"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
