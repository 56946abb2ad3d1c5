package chapters

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memberKey struct {
	chapterID string
	userID    string
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	chapters map[string]Chapter
	members  map[memberKey]Membership
	posts    map[string][]Post // chapterId -> posts
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		chapters: make(map[string]Chapter),
		members:  make(map[memberKey]Membership),
		posts:    make(map[string][]Post),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, chapter Chapter, founder Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.chapters {
		if strings.EqualFold(existing.Name, chapter.Name) {
			return ErrDuplicateName
		}
	}
	chapter.MemberCount = 1
	r.chapters[chapter.ID] = chapter
	r.members[memberKey{founder.ChapterID, founder.UserID}] = founder
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, chapterID string) (Chapter, error) {
	if err := ctx.Err(); err != nil {
		return Chapter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	chapter, ok := r.chapters[chapterID]
	if !ok {
		return Chapter{}, ErrNotFound
	}
	return chapter, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Chapter, 0, len(r.chapters))
	for _, chapter := range r.chapters {
		out = append(out, chapter)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) AddMember(ctx context.Context, membership Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{membership.ChapterID, membership.UserID}
	if _, ok := r.members[key]; ok {
		return ErrDuplicateMember
	}
	r.members[key] = membership
	return nil
}

func (r *MemoryRepo) GetMembership(ctx context.Context, chapterID, userID string) (Membership, error) {
	if err := ctx.Err(); err != nil {
		return Membership{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[memberKey{chapterID, userID}]
	if !ok {
		return Membership{}, ErrMembershipMissing
	}
	return m, nil
}

func (r *MemoryRepo) ApproveMember(ctx context.Context, chapterID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{chapterID, userID}
	m, ok := r.members[key]
	if !ok || m.Status != MemberPending {
		return ErrMembershipMissing
	}
	m.Status = MemberApproved
	r.members[key] = m

	chapter := r.chapters[chapterID]
	chapter.MemberCount++
	r.chapters[chapterID] = chapter
	return nil
}

func (r *MemoryRepo) CreatePost(ctx context.Context, post Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ChapterID] = append(r.posts[post.ChapterID], post)
	return nil
}

func (r *MemoryRepo) ListPosts(ctx context.Context, chapterID string) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.posts[chapterID]
	out := make([]Post, len(stored))
	copy(out, stored)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
