package store

import (
	"context"
	"time"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// RecordStatusChange appends one entry to the status-change audit trail.
func (s *Store) RecordStatusChange(ctx context.Context, c models.StatusChange) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO status_changes (kind, order_id, status, user_id, succeeded, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.DB.ExecContext(ctx, query, string(c.Kind), c.OrderID, string(c.Status), c.UserID, c.Succeeded, c.Error, c.CreatedAt.UTC())
	return err
}

// RecentStatusChanges returns the newest entries first.
func (s *Store) RecentStatusChanges(ctx context.Context, limit int) ([]models.StatusChange, error) {
	if limit <= 0 {
		limit = 10 // Default limit
	}
	query := `
		SELECT id, kind, order_id, status, user_id, succeeded, error, created_at
		FROM status_changes
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []models.StatusChange
	for rows.Next() {
		var (
			c            models.StatusChange
			kind, status string
		)
		if err := rows.Scan(&c.ID, &kind, &c.OrderID, &status, &c.UserID, &c.Succeeded, &c.Error, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Kind = models.OrderKind(kind)
		c.Status = models.OrderStatus(status)
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
