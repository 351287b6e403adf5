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

const itemColumns = `id, group_id, round_id, creator_id, name, price, quantity, note, deleted, menu_item_id,
	orderer_name, shared, share_mode, share_status, allow_self_join, allow_claim_units, created_at, updated_at, version`

// CreateRoundItem persists a new order line and its shares.
func (s *queries) CreateRoundItem(ctx context.Context, item *models.RoundItem) error {
	// Generate ID if not set
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}
	if item.UpdatedAt == 0 {
		item.UpdatedAt = item.CreatedAt
	}
	item.Version = 1

	shared := item.Shared
	if shared == nil {
		shared = &models.SharedLine{}
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO round_items (`+itemColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.GroupID, item.RoundID, item.CreatorID, item.Name, item.Price, item.Quantity, item.Note,
		boolToInt(item.Deleted), item.MenuItemID, item.OrdererName, boolToInt(item.Shared != nil),
		shared.Mode, shared.Status, boolToInt(shared.AllowSelfJoin), boolToInt(shared.AllowClaimUnits),
		item.CreatedAt, item.UpdatedAt, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert round item: %w", err)
	}

	return s.writeShares(ctx, item)
}

func (s *queries) writeShares(ctx context.Context, item *models.RoundItem) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM round_item_shares WHERE item_id = ?", item.ID); err != nil {
		return fmt.Errorf("failed to clear shares: %w", err)
	}
	if item.Shared == nil {
		return nil
	}
	for i, sh := range item.Shared.Shares {
		var amount any
		if sh.Amount != nil {
			amount = *sh.Amount
		}
		_, err := s.q.ExecContext(ctx,
			`INSERT INTO round_item_shares (item_id, position, participant_id, weight, units, amount)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, i, sh.ParticipantID, sh.Weight, sh.Units, amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert share: %w", err)
		}
	}
	return nil
}

// GetRoundItem retrieves an order line by ID, including its shares.
func (s *queries) GetRoundItem(ctx context.Context, itemID string) (*models.RoundItem, error) {
	items, err := s.listItems(ctx, `WHERE id = ?`, itemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, notFound("round item", itemID)
	}
	return items[0], nil
}

// UpdateRoundItem rewrites an order line and its shares if item.Version is current.
func (s *queries) UpdateRoundItem(ctx context.Context, item *models.RoundItem) error {
	item.UpdatedAt = time.Now().Unix()

	shared := item.Shared
	if shared == nil {
		shared = &models.SharedLine{}
	}

	res, err := s.q.ExecContext(ctx,
		`UPDATE round_items SET name = ?, price = ?, quantity = ?, note = ?, deleted = ?, menu_item_id = ?,
		 orderer_name = ?, shared = ?, share_mode = ?, share_status = ?, allow_self_join = ?, allow_claim_units = ?,
		 updated_at = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		item.Name, item.Price, item.Quantity, item.Note, boolToInt(item.Deleted), item.MenuItemID,
		item.OrdererName, boolToInt(item.Shared != nil), shared.Mode, shared.Status,
		boolToInt(shared.AllowSelfJoin), boolToInt(shared.AllowClaimUnits),
		item.UpdatedAt, item.ID, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update round item: %w", err)
	}
	if err := s.casResult(ctx, res, "round_items", item.ID); err != nil {
		return err
	}
	item.Version++

	return s.writeShares(ctx, item)
}

// ListRoundItems retrieves all lines of a round in creation order.
func (s *queries) ListRoundItems(ctx context.Context, roundID string) ([]*models.RoundItem, error) {
	return s.listItems(ctx, `WHERE round_id = ?`, roundID)
}

// ListGroupItems retrieves all lines of a group in creation order.
func (s *queries) ListGroupItems(ctx context.Context, groupID string) ([]*models.RoundItem, error) {
	return s.listItems(ctx, `WHERE group_id = ?`, groupID)
}

func (s *queries) listItems(ctx context.Context, where string, arg string) ([]*models.RoundItem, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM round_items `+where+` ORDER BY created_at, rowid`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get round items: %w", err)
	}

	var items []*models.RoundItem
	byID := make(map[string]*models.RoundItem)
	for rows.Next() {
		item := &models.RoundItem{}
		var deleted, shared, selfJoin, claimUnits int
		var mode, status string
		if err := rows.Scan(&item.ID, &item.GroupID, &item.RoundID, &item.CreatorID, &item.Name, &item.Price,
			&item.Quantity, &item.Note, &deleted, &item.MenuItemID, &item.OrdererName, &shared, &mode, &status,
			&selfJoin, &claimUnits, &item.CreatedAt, &item.UpdatedAt, &item.Version); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan round item: %w", err)
		}
		item.Deleted = deleted == 1
		if shared == 1 {
			item.Shared = &models.SharedLine{
				Mode:            models.ShareMode(mode),
				Status:          models.ShareStatus(status),
				AllowSelfJoin:   selfJoin == 1,
				AllowClaimUnits: claimUnits == 1,
			}
		}
		items = append(items, item)
		byID[item.ID] = item
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate round items: %w", err)
	}

	if err := s.loadShares(ctx, items, byID); err != nil {
		return nil, err
	}
	return items, nil
}

// loadShares fetches shares of every shared item in one query.
func (s *queries) loadShares(ctx context.Context, items []*models.RoundItem, byID map[string]*models.RoundItem) error {
	var ids []any
	for _, item := range items {
		if item.Shared != nil {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.q.QueryContext(ctx,
		`SELECT item_id, participant_id, weight, units, amount FROM round_item_shares
		 WHERE item_id IN (?`+repeatPlaceholder(len(ids)-1)+`)
		 ORDER BY item_id, position`,
		ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		var sh models.Share
		var amount sql.NullInt64
		if err := rows.Scan(&itemID, &sh.ParticipantID, &sh.Weight, &sh.Units, &amount); err != nil {
			return fmt.Errorf("failed to scan share: %w", err)
		}
		if amount.Valid {
			v := amount.Int64
			sh.Amount = &v
		}
		if item, ok := byID[itemID]; ok && item.Shared != nil {
			item.Shared.Shares = append(item.Shared.Shares, sh)
		}
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to iterate shares: %w", err)
	}
	return nil
}
