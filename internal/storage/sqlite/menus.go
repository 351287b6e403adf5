package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tableround/internal/models"
)

const menuItemColumns = `id, group_id, name, price, status, created_by, updated_by, created_at, updated_at`

// CreateMenuItem persists a new dish.
func (s *queries) CreateMenuItem(ctx context.Context, dish *models.GroupMenuItem) error {
	// Generate ID if not set
	if dish.ID == "" {
		dish.ID = uuid.New().String()
	}
	if dish.CreatedAt == 0 {
		dish.CreatedAt = time.Now().Unix()
	}
	if dish.UpdatedAt == 0 {
		dish.UpdatedAt = dish.CreatedAt
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO menu_items (`+menuItemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		dish.ID, dish.GroupID, dish.Name, dish.Price, dish.Status, dish.CreatedBy, dish.UpdatedBy,
		dish.CreatedAt, dish.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// GetMenuItem retrieves a dish by ID.
func (s *queries) GetMenuItem(ctx context.Context, dishID string) (*models.GroupMenuItem, error) {
	dish := &models.GroupMenuItem{}
	err := s.q.QueryRowContext(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = ?`, dishID,
	).Scan(&dish.ID, &dish.GroupID, &dish.Name, &dish.Price, &dish.Status, &dish.CreatedBy, &dish.UpdatedBy,
		&dish.CreatedAt, &dish.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("menu item", dishID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return dish, nil
}

// UpdateMenuItem rewrites a dish.
func (s *queries) UpdateMenuItem(ctx context.Context, dish *models.GroupMenuItem) error {
	dish.UpdatedAt = time.Now().Unix()
	res, err := s.q.ExecContext(ctx,
		`UPDATE menu_items SET name = ?, price = ?, status = ?, updated_by = ?, updated_at = ? WHERE id = ?`,
		dish.Name, dish.Price, dish.Status, dish.UpdatedBy, dish.UpdatedAt, dish.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("menu item", dish.ID)
	}
	return nil
}

// ListMenuItems retrieves every dish of a group, oldest first.
func (s *queries) ListMenuItems(ctx context.Context, groupID string) ([]*models.GroupMenuItem, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE group_id = ? ORDER BY created_at, rowid`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var dishes []*models.GroupMenuItem
	for rows.Next() {
		dish := &models.GroupMenuItem{}
		if err := rows.Scan(&dish.ID, &dish.GroupID, &dish.Name, &dish.Price, &dish.Status, &dish.CreatedBy,
			&dish.UpdatedBy, &dish.CreatedAt, &dish.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return dishes, nil
}
