package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// CreateGroup persists a new group with its members.
func (s *queries) CreateGroup(ctx context.Context, group *models.Group) error {
	now := time.Now().Unix()
	if group.CreatedAt == 0 {
		group.CreatedAt = now
	}
	if group.UpdatedAt == 0 {
		group.UpdatedAt = group.CreatedAt
	}
	group.Version = 1

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO groups (id, name, owner_id, settled, checkout_confirming, created_at, updated_at, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID, group.Name, group.OwnerID, boolToInt(group.Settled), boolToInt(group.CheckoutConfirming),
		group.CreatedAt, group.UpdatedAt, group.Version,
	)
	if err != nil {
		var exists int
		if s.q.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", group.ID).Scan(&exists) == nil {
			return fmt.Errorf("%w: group %s already exists", storage.ErrConflict, group.ID)
		}
		return fmt.Errorf("failed to insert group: %w", err)
	}

	return s.insertMembers(ctx, group)
}

func (s *queries) insertMembers(ctx context.Context, group *models.Group) error {
	for i, m := range group.Members {
		_, err := s.q.ExecContext(ctx,
			`INSERT INTO group_members (group_id, user_id, display_name, joined_at, position, checkout_confirmed)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			group.ID, m.UserID, m.DisplayName, m.JoinedAt, i, boolToInt(group.CheckoutConfirmations[m.UserID]),
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

// GetGroup retrieves a group by ID, including members and checkout confirmations.
func (s *queries) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{CheckoutConfirmations: models.Confirmations{}}
	var settled, confirming int
	err := s.q.QueryRowContext(ctx,
		`SELECT id, name, owner_id, settled, checkout_confirming, created_at, updated_at, version
		 FROM groups WHERE id = ?`,
		groupID,
	).Scan(&group.ID, &group.Name, &group.OwnerID, &settled, &confirming,
		&group.CreatedAt, &group.UpdatedAt, &group.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("group", groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.Settled = settled == 1
	group.CheckoutConfirming = confirming == 1

	rows, err := s.q.QueryContext(ctx,
		`SELECT user_id, display_name, joined_at, checkout_confirmed
		 FROM group_members WHERE group_id = ? ORDER BY position`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		var confirmed int
		if err := rows.Scan(&m.UserID, &m.DisplayName, &m.JoinedAt, &confirmed); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		group.Members = append(group.Members, m)
		group.CheckoutConfirmations[m.UserID] = confirmed == 1
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	return group, nil
}

// UpdateGroup replaces a group's row and member list if group.Version is current.
func (s *queries) UpdateGroup(ctx context.Context, group *models.Group) error {
	group.UpdatedAt = time.Now().Unix()

	res, err := s.q.ExecContext(ctx,
		`UPDATE groups SET name = ?, owner_id = ?, settled = ?, checkout_confirming = ?, updated_at = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		group.Name, group.OwnerID, boolToInt(group.Settled), boolToInt(group.CheckoutConfirming), group.UpdatedAt,
		group.ID, group.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if err := s.casResult(ctx, res, "groups", group.ID); err != nil {
		return err
	}
	group.Version++

	if _, err := s.q.ExecContext(ctx, "DELETE FROM group_members WHERE group_id = ?", group.ID); err != nil {
		return fmt.Errorf("failed to clear group members: %w", err)
	}
	return s.insertMembers(ctx, group)
}

// DeleteGroup removes a group and, through foreign keys, everything it owns.
func (s *queries) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("group", groupID)
	}
	return nil
}

// ListGroupsByMember returns the groups a user belongs to, newest first.
func (s *queries) ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT g.id FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY g.created_at DESC, g.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by member: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		g, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
