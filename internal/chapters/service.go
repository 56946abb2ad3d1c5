package chapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/users"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("not allowed")
	ErrNotApproved  = errors.New("membership not approved")
)

// Service implements the alumni chapter lifecycle.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create founds a chapter with the caller as approved lead.
func (s *Service) Create(ctx context.Context, creatorID, name, description, region string) (Chapter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Chapter{}, ErrInvalidInput
	}
	now := time.Now().UTC()
	chapter := Chapter{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Region:      strings.TrimSpace(region),
		CreatedBy:   creatorID,
		MemberCount: 1,
		CreatedAt:   now,
	}
	founder := Membership{
		ChapterID: chapter.ID,
		UserID:    creatorID,
		Status:    MemberApproved,
		Role:      RoleLead,
		JoinedAt:  now,
	}
	if err := s.Repo.Create(ctx, chapter, founder); err != nil {
		return Chapter{}, err
	}
	return chapter, nil
}

// Get returns one chapter.
func (s *Service) Get(ctx context.Context, chapterID string) (Chapter, error) {
	return s.Repo.GetByID(ctx, chapterID)
}

// List returns all chapters ordered by name.
func (s *Service) List(ctx context.Context) ([]Chapter, error) {
	return s.Repo.List(ctx)
}

// Join creates a pending membership for the caller.
func (s *Service) Join(ctx context.Context, chapterID, userID string) (Membership, error) {
	if _, err := s.Repo.GetByID(ctx, chapterID); err != nil {
		return Membership{}, err
	}
	membership := Membership{
		ChapterID: chapterID,
		UserID:    userID,
		Status:    MemberPending,
		Role:      RoleMember,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.Repo.AddMember(ctx, membership); err != nil {
		return Membership{}, err
	}
	return membership, nil
}

// Approve flips a pending membership to approved. Only a chapter lead or an
// admin may approve.
func (s *Service) Approve(ctx context.Context, chapterID, memberID, callerID, callerRole string) error {
	if _, err := s.Repo.GetByID(ctx, chapterID); err != nil {
		return err
	}
	if callerRole != users.RoleAdmin {
		caller, err := s.Repo.GetMembership(ctx, chapterID, callerID)
		if err != nil || caller.Role != RoleLead || caller.Status != MemberApproved {
			return ErrForbidden
		}
	}
	return s.Repo.ApproveMember(ctx, chapterID, memberID)
}

// CreatePost publishes a post by an approved member (or admin).
func (s *Service) CreatePost(ctx context.Context, chapterID, authorID, authorRole, title, body string) (Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return Post{}, ErrInvalidInput
	}
	if _, err := s.Repo.GetByID(ctx, chapterID); err != nil {
		return Post{}, err
	}
	if authorRole != users.RoleAdmin {
		membership, err := s.Repo.GetMembership(ctx, chapterID, authorID)
		if err != nil {
			return Post{}, ErrNotApproved
		}
		if membership.Status != MemberApproved {
			return Post{}, ErrNotApproved
		}
	}
	post := Post{
		ID:        uuid.NewString(),
		ChapterID: chapterID,
		AuthorID:  authorID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreatePost(ctx, post); err != nil {
		return Post{}, err
	}
	return post, nil
}

// ListPosts returns a chapter's posts, newest first.
func (s *Service) ListPosts(ctx context.Context, chapterID string) ([]Post, error) {
	if _, err := s.Repo.GetByID(ctx, chapterID); err != nil {
		return nil, err
	}
	return s.Repo.ListPosts(ctx, chapterID)
}
