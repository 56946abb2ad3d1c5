package chapters

import (
	"context"
	"database/sql"
	"errors"

	"jobboard-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, chapter Chapter, founder Membership) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
INSERT INTO chapters (id, name, description, region, created_by, member_count, created_at)
VALUES ($1, $2, $3, $4, $5, 1, now())`,
		chapter.ID,
		chapter.Name,
		nullableString(chapter.Description),
		nullableString(chapter.Region),
		chapter.CreatedBy,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			err = ErrDuplicateName
		}
		return err
	}

	if _, err = tx.ExecContext(ctx, `
INSERT INTO chapter_members (chapter_id, user_id, status, member_role, joined_at)
VALUES ($1, $2, $3, $4, now())`,
		founder.ChapterID, founder.UserID, founder.Status, founder.Role); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepo) GetByID(ctx context.Context, chapterID string) (Chapter, error) {
	const query = `
SELECT id, name, description, region, created_by, member_count, created_at
FROM chapters
WHERE id = $1
LIMIT 1`
	chapter, err := scanChapter(r.DB.QueryRowContext(ctx, query, chapterID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Chapter{}, ErrNotFound
		}
		return Chapter{}, err
	}
	return chapter, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Chapter, error) {
	const query = `
SELECT id, name, description, region, created_by, member_count, created_at
FROM chapters
ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Chapter{}
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, chapter)
	}
	return out, rows.Err()
}

func (r *PGRepo) AddMember(ctx context.Context, membership Membership) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO chapter_members (chapter_id, user_id, status, member_role, joined_at)
VALUES ($1, $2, $3, $4, now())`,
		membership.ChapterID,
		membership.UserID,
		membership.Status,
		membership.Role,
	)
	if db.IsUniqueViolation(err) {
		return ErrDuplicateMember
	}
	return err
}

func (r *PGRepo) GetMembership(ctx context.Context, chapterID, userID string) (Membership, error) {
	const query = `
SELECT chapter_id, user_id, status, member_role, joined_at
FROM chapter_members
WHERE chapter_id = $1 AND user_id = $2
LIMIT 1`
	var m Membership
	err := r.DB.QueryRowContext(ctx, query, chapterID, userID).Scan(
		&m.ChapterID, &m.UserID, &m.Status, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Membership{}, ErrMembershipMissing
		}
		return Membership{}, err
	}
	return m, nil
}

func (r *PGRepo) ApproveMember(ctx context.Context, chapterID, userID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	// Conditional on pending status so a double approval cannot double-count.
	res, err := tx.ExecContext(ctx, `
UPDATE chapter_members
SET status = $3
WHERE chapter_id = $1 AND user_id = $2 AND status = $4`,
		chapterID, userID, MemberApproved, MemberPending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = ErrMembershipMissing
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE chapters SET member_count = member_count + 1 WHERE id = $1`,
		chapterID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepo) CreatePost(ctx context.Context, post Post) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO chapter_posts (id, chapter_id, author_id, title, body, created_at)
VALUES ($1, $2, $3, $4, $5, now())`,
		post.ID, post.ChapterID, post.AuthorID, post.Title, post.Body)
	return err
}

func (r *PGRepo) ListPosts(ctx context.Context, chapterID string) ([]Post, error) {
	const query = `
SELECT id, chapter_id, author_id, title, body, created_at
FROM chapter_posts
WHERE chapter_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Post{}
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.ChapterID, &post.AuthorID, &post.Title, &post.Body, &post.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChapter(row rowScanner) (Chapter, error) {
	var chapter Chapter
	var description sql.NullString
	var region sql.NullString
	err := row.Scan(
		&chapter.ID,
		&chapter.Name,
		&description,
		&region,
		&chapter.CreatedBy,
		&chapter.MemberCount,
		&chapter.CreatedAt,
	)
	if err != nil {
		return Chapter{}, err
	}
	if description.Valid {
		chapter.Description = description.String
	}
	if region.Valid {
		chapter.Region = region.String
	}
	return chapter, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
