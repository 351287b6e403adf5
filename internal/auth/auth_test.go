package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tableround/internal/models"
)

type memoryUsers struct {
	byID map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return m.byID[id], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers()).WithCost(bcrypt.MinCost)

	user, err := a.Register(ctx, " Alice@Example.com ", "Alice", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email: expected normalized address, got %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("expected password to be hashed")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "alice@example.com", "correct horse", nil},
		{"case insensitive email", "ALICE@example.com", "correct horse", nil},
		{"wrong password", "alice@example.com", "battery staple", ErrInvalidCredentials},
		{"unknown user", "bob@example.com", "correct horse", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Authenticate(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && got.ID != user.ID {
				t.Errorf("expected user %s, got %s", user.ID, got.ID)
			}
		})
	}
}

func TestPasswordAuthenticator_RegisterErrors(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers()).WithCost(bcrypt.MinCost)

	if _, err := a.Register(ctx, "alice@example.com", "Alice", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := a.Register(ctx, "alice@example.com", "Alice", "long enough"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := a.Register(ctx, "Alice@Example.com", "Other Alice", "long enough"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com", DisplayName: "Alice"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alice@example.com" || claims.DisplayName != "Alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "u1" || claims.Issuer != Issuer {
		t.Errorf("unexpected registered claims: sub=%q iss=%q", claims.Subject, claims.Issuer)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("secret", -time.Minute)
		old, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tampered", func(t *testing.T) {
		parts := strings.Split(token, ".")
		parts[1] = parts[1] + "x"
		if _, err := m.Validate(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
