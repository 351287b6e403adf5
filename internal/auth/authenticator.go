// Package auth registers accounts, checks credentials and issues the bearer
// tokens that identify the acting member on every dining call.
package auth

import (
	"context"

	"github.com/mmynk/tableround/internal/models"
)

// Authenticator creates accounts and verifies credentials. Implementations
// may use passwords, passkeys or an external identity provider.
type Authenticator interface {
	// Register creates an account. The credential format depends on the
	// implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account matching email and credential.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential rejects credentials the implementation won't accept.
	ValidateCredential(credential string) error
}
