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

const roundColumns = `id, group_id, number, kind, status, created_by, created_at, closed_at, version`

// CreateRound persists a new round and its confirmation map.
func (s *queries) CreateRound(ctx context.Context, round *models.Round) error {
	if round.CreatedAt == 0 {
		round.CreatedAt = time.Now().Unix()
	}
	if round.Confirmations == nil {
		round.Confirmations = models.Confirmations{}
	}
	round.Version = 1

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO rounds (`+roundColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		round.ID, round.GroupID, round.Number, round.Kind, round.Status, round.CreatedBy,
		round.CreatedAt, round.ClosedAt, round.Version,
	)
	if err != nil {
		var exists int
		if s.q.QueryRowContext(ctx, "SELECT 1 FROM rounds WHERE id = ?", round.ID).Scan(&exists) == nil {
			return fmt.Errorf("%w: round %s already exists", storage.ErrConflict, round.ID)
		}
		return fmt.Errorf("failed to insert round: %w", err)
	}

	return s.writeConfirmations(ctx, round)
}

func (s *queries) writeConfirmations(ctx context.Context, round *models.Round) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM round_confirmations WHERE round_id = ?", round.ID); err != nil {
		return fmt.Errorf("failed to clear round confirmations: %w", err)
	}
	for userID, ok := range round.Confirmations {
		_, err := s.q.ExecContext(ctx,
			"INSERT INTO round_confirmations (round_id, user_id, confirmed) VALUES (?, ?, ?)",
			round.ID, userID, boolToInt(ok),
		)
		if err != nil {
			return fmt.Errorf("failed to insert round confirmation: %w", err)
		}
	}
	return nil
}

// GetRound retrieves a round by ID.
func (s *queries) GetRound(ctx context.Context, roundID string) (*models.Round, error) {
	round := &models.Round{}
	err := s.q.QueryRowContext(ctx,
		`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, roundID,
	).Scan(&round.ID, &round.GroupID, &round.Number, &round.Kind, &round.Status, &round.CreatedBy,
		&round.CreatedAt, &round.ClosedAt, &round.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("round", roundID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if err := s.loadConfirmations(ctx, round); err != nil {
		return nil, err
	}
	return round, nil
}

func (s *queries) loadConfirmations(ctx context.Context, round *models.Round) error {
	round.Confirmations = models.Confirmations{}
	rows, err := s.q.QueryContext(ctx,
		"SELECT user_id, confirmed FROM round_confirmations WHERE round_id = ?", round.ID)
	if err != nil {
		return fmt.Errorf("failed to get round confirmations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var confirmed int
		if err := rows.Scan(&userID, &confirmed); err != nil {
			return fmt.Errorf("failed to scan round confirmation: %w", err)
		}
		round.Confirmations[userID] = confirmed == 1
	}
	return rows.Err()
}

// UpdateRound writes status, close time and confirmations if round.Version is current.
func (s *queries) UpdateRound(ctx context.Context, round *models.Round) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE rounds SET status = ?, closed_at = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		round.Status, round.ClosedAt, round.ID, round.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update round: %w", err)
	}
	if err := s.casResult(ctx, res, "rounds", round.ID); err != nil {
		return err
	}
	round.Version++
	return s.writeConfirmations(ctx, round)
}

// ListRounds retrieves all rounds of a group, ordinary rounds by number and
// the extra round last.
func (s *queries) ListRounds(ctx context.Context, groupID string) ([]*models.Round, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+roundColumns+` FROM rounds WHERE group_id = ?
		 ORDER BY CASE kind WHEN 'extra' THEN 1 ELSE 0 END, number`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	var rounds []*models.Round
	for rows.Next() {
		round := &models.Round{}
		if err := rows.Scan(&round.ID, &round.GroupID, &round.Number, &round.Kind, &round.Status, &round.CreatedBy,
			&round.CreatedAt, &round.ClosedAt, &round.Version); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	for _, round := range rounds {
		if err := s.loadConfirmations(ctx, round); err != nil {
			return nil, err
		}
	}
	return rounds, nil
}
