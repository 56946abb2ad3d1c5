package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, poster_id, title, company, location, description, salary_range, job_type, status, application_count, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, poster_id, title, company, location, description, salary_range, job_type, status, application_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.PosterID,
		job.Title,
		job.Company,
		nullableString(job.Location),
		job.Description,
		nullableString(job.SalaryRange),
		nullableString(job.JobType),
		job.Status,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1 LIMIT 1`, jobColumns)
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs
SET title = $2, company = $3, location = $4, description = $5, salary_range = $6, job_type = $7, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		nullableString(job.Location),
		job.Description,
		nullableString(job.SalaryRange),
		nullableString(job.JobType),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) UpdateStatus(ctx context.Context, jobID, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`,
		jobID, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, jobID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Job, int, error) {
	where, args := buildWhere(filter)

	var total int
	countQuery := `SELECT count(*) FROM jobs` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, filter.Limit, filter.Offset)
	listQuery := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, job)
	}
	return out, total, rows.Err()
}

func buildWhere(filter Filter) (string, []any) {
	var clauses []string
	var args []any
	next := func() int { return len(args) + 1 }

	if q := strings.TrimSpace(filter.Query); q != "" {
		n := next()
		clauses = append(clauses, fmt.Sprintf(`(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)`, n, n, n))
		args = append(args, "%"+q+"%")
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		clauses = append(clauses, fmt.Sprintf(`location ILIKE $%d`, next()))
		args = append(args, "%"+loc+"%")
	}
	if jt := strings.TrimSpace(filter.JobType); jt != "" {
		clauses = append(clauses, fmt.Sprintf(`job_type = $%d`, next()))
		args = append(args, jt)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var location sql.NullString
	var salaryRange sql.NullString
	var jobType sql.NullString
	err := row.Scan(
		&job.ID,
		&job.PosterID,
		&job.Title,
		&job.Company,
		&location,
		&job.Description,
		&salaryRange,
		&jobType,
		&job.Status,
		&job.ApplicationCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	if location.Valid {
		job.Location = location.String
	}
	if salaryRange.Valid {
		job.SalaryRange = salaryRange.String
	}
	if jobType.Valid {
		job.JobType = jobType.String
	}
	return job, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
