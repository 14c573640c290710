package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  mode: debug
database:
  driver: sqlite
  dsn: "file:dash.db"
log:
  level: debug
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr() != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "file:dash.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Database.MaxOpenConns != 3 {
		t.Errorf("MaxOpenConns = %d, want 3", cfg.Database.MaxOpenConns)
	}
	if cfg.Log.Format != "console" || cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout default lost: %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "postgres://localhost/dash")
	t.Setenv("GIN_MODE", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.IsRelease() {
		t.Error("test mode reported as release")
	}
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		setDefaults(c)
		c.Database.DSN = "postgres://localhost/dash"
		c.Session.Secret = "0123456789abcdef"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, true},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = "http" }, true},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, true},
		{"short secret in release", func(c *Config) { c.Session.Secret = "x" }, true},
		{"short secret in debug", func(c *Config) { c.Session.Secret = ""; c.Server.Mode = "debug" }, false},
		{"redis store without redis", func(c *Config) { c.Session.Store = "redis" }, true},
		{"redis store", func(c *Config) { c.Session.Store = "redis"; c.Redis.Enabled = true }, false},
		{"password without jwt key", func(c *Config) { c.Auth.PasswordHash = "$2a$10$x" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := validateConfig(c)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
