package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// CreateUser inserts a new user into the database.
func (s *queries) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.q.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByID retrieves a user by their ID.
func (s *queries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *queries) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM users
		WHERE ` + column + ` = ?
	`

	user := &models.User{}
	err := s.q.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return user, nil
}

// notFound wraps storage.ErrNotFound with the record kind and id.
func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", storage.ErrNotFound, kind, id)
}
