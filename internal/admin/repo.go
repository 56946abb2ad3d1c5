package admin

import "context"

// StatsSource computes platform-wide totals.
type StatsSource interface {
	Totals(ctx context.Context) (Totals, error)
}
