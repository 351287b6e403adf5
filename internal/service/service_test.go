package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tableround/internal/auth"
	"github.com/mmynk/tableround/internal/dining"
	"github.com/mmynk/tableround/internal/middleware"
	"github.com/mmynk/tableround/internal/storage/sqlite"
	pb "github.com/mmynk/tableround/pkg/proto"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
)

type testEnv struct {
	table protoconnect.TableServiceClient
	order protoconnect.OrderServiceClient
	menu  protoconnect.MenuServiceClient
	auth  protoconnect.AuthServiceClient
}

// testUser is a registered account and its bearer token.
type testUser struct {
	ID    string
	Token string
}

// setupTestServer serves every service over httptest, backed by a temp
// SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := dining.New(store, dining.WithLogger(logger))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	protected := connect.WithInterceptors(
		middleware.LoggingInterceptor(logger),
		middleware.RequireAuth(jwtManager),
	)
	public := connect.WithInterceptors(
		middleware.LoggingInterceptor(logger),
		middleware.OptionalAuth(jwtManager),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewTableServiceHandler(NewTableService(engine, logger), protected))
	mux.Handle(protoconnect.NewOrderServiceHandler(NewOrderService(engine, logger), protected))
	mux.Handle(protoconnect.NewMenuServiceHandler(NewMenuService(engine, logger), protected))
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, store, jwtManager, logger), public))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testEnv{
		table: protoconnect.NewTableServiceClient(http.DefaultClient, server.URL),
		order: protoconnect.NewOrderServiceClient(http.DefaultClient, server.URL),
		menu:  protoconnect.NewMenuServiceClient(http.DefaultClient, server.URL),
		auth:  protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

func (env *testEnv) register(t *testing.T, name string) testUser {
	t.Helper()
	resp, err := env.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       name + "@example.com",
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register %s failed: %v", name, err)
	}
	return testUser{ID: resp.Msg.User.Id, Token: resp.Msg.Token}
}

// as builds a request authenticated as u.
func as[T any](u testUser, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+u.Token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if cerr.Code() != want {
		t.Fatalf("expected %v, got %v: %v", want, cerr.Code(), err)
	}
	return cerr
}

// newTable creates a group owned by owner and joined by the others.
func (env *testEnv) newTable(t *testing.T, owner testUser, others ...testUser) (*pb.Group, *pb.Round) {
	t.Helper()
	ctx := context.Background()
	resp, err := env.table.CreateGroup(ctx, as(owner, &pb.CreateGroupRequest{Name: "Friday Hotpot"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, u := range others {
		if _, err := env.table.JoinGroup(ctx, as(u, &pb.JoinGroupRequest{GroupId: resp.Msg.Group.Id})); err != nil {
			t.Fatalf("JoinGroup failed: %v", err)
		}
	}
	return resp.Msg.Group, resp.Msg.Round
}
