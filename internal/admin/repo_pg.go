package admin

import (
	"context"
	"database/sql"
)

// PGStatsSource is the Postgres implementation of StatsSource.
type PGStatsSource struct {
	DB *sql.DB
}

func (s *PGStatsSource) Totals(ctx context.Context) (Totals, error) {
	totals := Totals{
		UsersByRole:          map[string]int{},
		JobsByStatus:         map[string]int{},
		ApplicationsByStatus: map[string]int{},
	}

	if err := s.countGroups(ctx, `SELECT role, count(*) FROM users GROUP BY role`, totals.UsersByRole); err != nil {
		return Totals{}, err
	}
	if err := s.countGroups(ctx, `SELECT status, count(*) FROM jobs GROUP BY status`, totals.JobsByStatus); err != nil {
		return Totals{}, err
	}
	if err := s.countGroups(ctx, `SELECT status, count(*) FROM applications GROUP BY status`, totals.ApplicationsByStatus); err != nil {
		return Totals{}, err
	}
	if err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM chapters`).Scan(&totals.Chapters); err != nil {
		return Totals{}, err
	}
	return totals, nil
}

func (s *PGStatsSource) countGroups(ctx context.Context, query string, into map[string]int) error {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}
	return rows.Err()
}
