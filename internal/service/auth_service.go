package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/auth"
	"github.com/mmynk/tableround/internal/middleware"
	pb "github.com/mmynk/tableround/pkg/proto"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ protoconnect.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users auth.UserStorage, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	if err := validateRequest(
		check("email", req.Msg.Email, "required,email"),
		check("display_name", req.Msg.DisplayName, displayNameTag),
		required("password", req.Msg.Password),
	); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&pb.RegisterResponse{
		User:  toPBUser(user),
		Token: token,
	}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if err := validateRequest(check("email", req.Msg.Email, "required,email"), required("password", req.Msg.Password)); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&pb.LoginResponse{
		User:  toPBUser(user),
		Token: token,
	}), nil
}

// Logout is a no-op: tokens are stateless and discarded client-side.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[pb.LogoutRequest]) (*connect.Response[pb.LogoutResponse], error) {
	s.logger.Info("Logout request", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&pb.LogoutResponse{}), nil
}

// GetCurrentUser returns the authenticated user's account.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	userID, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("GetCurrentUser failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("user no longer exists"))
	}
	return connect.NewResponse(&pb.GetCurrentUserResponse{User: toPBUser(user)}), nil
}
