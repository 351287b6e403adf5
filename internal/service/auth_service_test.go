package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/tableround/pkg/proto"
)

func TestAuthService(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	if alice.Token == "" {
		t.Fatal("expected token on register")
	}

	t.Run("login", func(t *testing.T) {
		resp, err := env.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
			Email:    "Alice@Example.com",
			Password: "password123",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Msg.User.Id != alice.ID {
			t.Errorf("expected user %s, got %s", alice.ID, resp.Msg.User.Id)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
			Email:    "alice@example.com",
			Password: "not-the-password",
		}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email:       "alice@example.com",
			DisplayName: "Other Alice",
			Password:    "password123",
		}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email:       "not-an-email",
			DisplayName: "Nobody",
			Password:    "password123",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email:       "bob@example.com",
			DisplayName: "Bob",
			Password:    "short",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("current user", func(t *testing.T) {
		resp, err := env.auth.GetCurrentUser(ctx, as(alice, &pb.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if resp.Msg.User.DisplayName != "alice" || resp.Msg.User.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", resp.Msg.User)
		}
	})

	t.Run("current user requires token", func(t *testing.T) {
		_, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("table calls require token", func(t *testing.T) {
		_, err := env.table.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})
}
