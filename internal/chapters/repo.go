package chapters

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("chapter not found")
	ErrDuplicateName     = errors.New("chapter name already taken")
	ErrDuplicateMember   = errors.New("already a member of this chapter")
	ErrMembershipMissing = errors.New("membership not found")
)

type Repo interface {
	// Create inserts the chapter and its founding approved lead membership
	// in one transaction, with member_count starting at 1.
	Create(ctx context.Context, chapter Chapter, founder Membership) error
	GetByID(ctx context.Context, chapterID string) (Chapter, error)
	List(ctx context.Context) ([]Chapter, error)

	AddMember(ctx context.Context, membership Membership) error
	GetMembership(ctx context.Context, chapterID, userID string) (Membership, error)
	// ApproveMember flips a pending membership to approved and increments
	// member_count in the same conditional statement; approving an already
	// approved membership is a no-op returning ErrMembershipMissing.
	ApproveMember(ctx context.Context, chapterID, userID string) error

	CreatePost(ctx context.Context, post Post) error
	ListPosts(ctx context.Context, chapterID string) ([]Post, error)
}
