package applications

import (
	"context"
	"database/sql"
	"errors"

	"jobboard-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

const appColumns = `id, job_id, user_id, cover_note, resume_text, status, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	// The UNIQUE(job_id, user_id) constraint is the real duplicate guard;
	// service-level checks are only a fast path.
	_, err = tx.ExecContext(ctx, `
INSERT INTO applications (id, job_id, user_id, cover_note, resume_text, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		app.ID,
		app.JobID,
		app.UserID,
		nullableString(app.CoverNote),
		nullableString(app.ResumeText),
		app.Status,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			err = ErrDuplicate
		}
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE jobs SET application_count = application_count + 1, updated_at = now() WHERE id = $1`,
		app.JobID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepo) GetByID(ctx context.Context, appID string) (Application, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+appColumns+` FROM applications WHERE id = $1 LIMIT 1`, appID)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]WithJob, error) {
	const query = `
SELECT a.id, a.job_id, a.user_id, a.cover_note, a.resume_text, a.status, a.created_at, a.updated_at,
       j.title, j.company
FROM applications a
JOIN jobs j ON j.id = a.job_id
WHERE a.user_id = $1
ORDER BY a.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []WithJob{}
	for rows.Next() {
		var item WithJob
		var coverNote sql.NullString
		var resumeText sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.JobID,
			&item.UserID,
			&coverNote,
			&resumeText,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.JobTitle,
			&item.JobCompany,
		); err != nil {
			return nil, err
		}
		if coverNote.Valid {
			item.CoverNote = coverNote.String
		}
		if resumeText.Valid {
			item.ResumeText = resumeText.String
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListByJob(ctx context.Context, jobID string) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+appColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, appID, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		appID, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, appID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var jobID string
	err = tx.QueryRowContext(ctx,
		`DELETE FROM applications WHERE id = $1 RETURNING job_id`, appID).Scan(&jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE jobs SET application_count = GREATEST(application_count - 1, 0), updated_at = now() WHERE id = $1`,
		jobID); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var coverNote sql.NullString
	var resumeText sql.NullString
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.UserID,
		&coverNote,
		&resumeText,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	if coverNote.Valid {
		app.CoverNote = coverNote.String
	}
	if resumeText.Valid {
		app.ResumeText = resumeText.String
	}
	return app, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
