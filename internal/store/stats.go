package store

import (
	"context"
	"database/sql"
	"errors"
)

type DashboardStats struct {
	TotalChanges    int
	FailedChanges   int
	ChangesByStatus map[string]int
}

// GetDashboardStats summarizes the audit trail for the dashboard.
func (s *Store) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		ChangesByStatus: make(map[string]int),
	}

	// 1. Totals
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN succeeded THEN 0 ELSE 1 END), 0)
		FROM status_changes
	`).Scan(&stats.TotalChanges, &stats.FailedChanges)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// 2. Successful changes by target status
	rows, err := s.DB.QueryContext(ctx, "SELECT status, COUNT(*) FROM status_changes WHERE succeeded GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ChangesByStatus[status] = count
	}
	return stats, rows.Err()
}
