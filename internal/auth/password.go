package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tableround/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// UserStorage is the slice of the store the authenticator needs.
// Lookups return nil and no error for unknown users.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: storage, cost: bcrypt.DefaultCost}
}

// WithCost returns a copy hashing with the given bcrypt cost. Tests use
// bcrypt.MinCost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: a.storage, cost: cost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password. The display
// name is what the rest of a table sees.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.User, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)

	existing, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(email, strings.TrimSpace(displayName), string(hashed))
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
