package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithUser returns a context carrying the acting user.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, EmailKey, email)
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

// RequireAuth rejects calls without a valid bearer token and stores the
// token's user in the context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			header := req.Header().Get("Authorization")
			if header == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}
			token, ok := bearerToken(header)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(WithUser(ctx, claims.UserID, claims.Email), req)
		}
	}
}

// OptionalAuth stores the token's user in the context when a valid bearer
// token is present and lets every call through. The AuthService uses it so
// Register and Login work anonymously.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				if claims, err := jwtManager.Validate(token); err == nil {
					ctx = WithUser(ctx, claims.UserID, claims.Email)
				}
			}
			return next(ctx, req)
		}
	}
}
