package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "TOKEN_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9090

[database]
path = "/tmp/dining.db"

[auth]
jwt_secret = "s3cret"
token_ttl = "2h"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/dining.db" {
		t.Errorf("expected db path from file, got %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	ttl, err := cfg.TokenDuration()
	if err != nil || ttl != 2*time.Hour {
		t.Errorf("expected 2h token ttl, got %v (%v)", ttl, err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 7000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != Default().Database.Path {
		t.Errorf("expected default db path, got %q", cfg.Database.Path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 7000\n")
	t.Setenv("PORT", "8181")
	t.Setenv("DB_PATH", "/var/lib/dining.db")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8181 {
		t.Errorf("expected env port, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/var/lib/dining.db" || cfg.Auth.JWTSecret != "from-env" || cfg.Log.Level != "warn" {
		t.Errorf("expected env overrides, got %+v", cfg)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults without a config file, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{"bad toml", "[server\nport = 1", nil},
		{"bad ttl", "[auth]\ntoken_ttl = \"soon\"\n", nil},
		{"bad port", "", map[string]string{"PORT": "http"}},
		{"port out of range", "[server]\nport = 70000\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing explicit file")
	}
}
