package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Database.InitOnRequest {
		t.Error("Database.InitOnRequest should be true by default")
	}
	if cfg.Lifecycle.Strict {
		t.Error("Lifecycle.Strict should be false by default")
	}
	if cfg.Seed.Username != "admin" || cfg.Seed.Password != "admin123" {
		t.Errorf("Seed = %+v, want admin/admin123", cfg.Seed)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.SQLitePath != "tasks.db" {
		t.Errorf("Database.SQLitePath = %q, want tasks.db", cfg.Database.SQLitePath)
	}
	if cfg.Server.AppURL != "http://localhost:3000" {
		t.Errorf("Server.AppURL = %q", cfg.Server.AppURL)
	}
	if len(cfg.Server.CORSAllowOrigins) != 1 || cfg.Server.CORSAllowOrigins[0] != "*" {
		t.Errorf("Server.CORSAllowOrigins = %v, want [*]", cfg.Server.CORSAllowOrigins)
	}
}

func TestLoadEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
	t.Setenv("AI_API_KEY", "k3y")
	t.Setenv("STRICT_LIFECYCLE", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/app" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Auth.APIKey != "k3y" {
		t.Errorf("Auth.APIKey = %q, want k3y", cfg.Auth.APIKey)
	}
	if !cfg.Lifecycle.Strict {
		t.Error("Lifecycle.Strict should follow STRICT_LIFECYCLE")
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSAllowOrigins) != 2 || cfg.Server.CORSAllowOrigins[0] != want[0] || cfg.Server.CORSAllowOrigins[1] != want[1] {
		t.Errorf("Server.CORSAllowOrigins = %v, want %v", cfg.Server.CORSAllowOrigins, want)
	}
}

func TestLoadVercelPath(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VERCEL", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.SQLitePath != "/tmp/tasks.db" {
		t.Errorf("Database.SQLitePath = %q, want /tmp/tasks.db", cfg.Database.SQLitePath)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED_NAME=Chefe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SEED_NAME") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed.Name != "Chefe" {
		t.Errorf("Seed.Name = %q, want Chefe", cfg.Seed.Name)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 4000\nlifecycle:\n  strict: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 4000 || !cfg.Lifecycle.Strict {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing config file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"gin mode", func(c *Config) { c.Server.GinMode = "loud" }, "gin_mode"},
		{"scheme", func(c *Config) { c.Database.URL = "redis://cache" }, "unsupported database url scheme"},
		{"log level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"seed", func(c *Config) { c.Seed.Password = "" }, "seed.username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
