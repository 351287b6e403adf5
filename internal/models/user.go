package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
// Group members and shared-line participants reference users by ID.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique).
	// Used for login.
	Email string

	// DisplayName is the name shown to the rest of the table.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile change.
	UpdatedAt int64
}

// NewUser builds a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
