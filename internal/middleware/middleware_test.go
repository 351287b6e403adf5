package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/auth"
	"github.com/mmynk/tableround/internal/metrics"
	"github.com/mmynk/tableround/internal/models"
)

type ping struct{}

func capture(got *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*got = GetUserID(ctx)
		return connect.NewResponse(&ping{}), nil
	}
}

func tokenFor(t *testing.T, m *auth.JWTManager, userID string) string {
	t.Helper()
	token, err := m.Generate(&models.User{ID: userID, Email: userID + "@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)
	valid := tokenFor(t, m, "alice")

	tests := []struct {
		name     string
		header   string
		wantUser string
		wantCode connect.Code
	}{
		{"valid token", "Bearer " + valid, "alice", 0},
		{"missing header", "", "", connect.CodeUnauthenticated},
		{"wrong scheme", "Basic " + valid, "", connect.CodeUnauthenticated},
		{"garbage token", "Bearer not-a-token", "", connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(m)(capture(&got))(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("expected %v, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantUser {
				t.Errorf("user: expected %q, got %q", tt.wantUser, got)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)

	var got string
	req := connect.NewRequest(&ping{})
	if _, err := OptionalAuth(m)(capture(&got))(context.Background(), req); err != nil {
		t.Fatalf("anonymous call failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected no user, got %q", got)
	}

	req.Header().Set("Authorization", "Bearer "+tokenFor(t, m, "bob"))
	if _, err := OptionalAuth(m)(capture(&got))(context.Background(), req); err != nil {
		t.Fatalf("authenticated call failed: %v", err)
	}
	if got != "bob" {
		t.Errorf("expected bob, got %q", got)
	}
}

func requestCount(t *testing.T, code string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != "tableround_rpc_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "code" && l.GetValue() == code {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestLoggingInterceptor_RecordsMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failing := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("denied"))
	})

	before := requestCount(t, "permission_denied")
	_, err := LoggingInterceptor(logger)(failing)(context.Background(), connect.NewRequest(&ping{}))
	if connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Fatalf("expected error to pass through, got %v", err)
	}
	if got := requestCount(t, "permission_denied") - before; got != 1 {
		t.Errorf("expected 1 recorded request, got %v", got)
	}
}
