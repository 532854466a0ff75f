package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

var configVars = []string{
	"DATABASE_URL", "STORAGE_DRIVER", "JWT_SECRET_KEY", "JWT_TTL", "SERVER_PORT",
	"LOG_LEVEL", "AUTO_MIGRATE", "CORS_ALLOWED_ORIGINS",
	"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, name := range configVars {
		t.Setenv(name, env[name])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL":   "postgres://localhost/matchmerit?sslmode=disable",
		"JWT_SECRET_KEY": "secret",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Errorf("StorageDriver: got %q, want %q", cfg.StorageDriver, StorageDriverPostgres)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: got %d, want 8080", cfg.ServerPort)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL: got %v, want 24h", cfg.JWTTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel: got %v, want INFO", cfg.LogLevel)
	}
	if cfg.AutoMigrate {
		t.Error("AutoMigrate: got true, want false")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins: got %v, want [*]", cfg.CORSAllowedOrigins)
	}
	if cfg.Archive != nil {
		t.Errorf("Archive: got %+v, want nil", cfg.Archive)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_DRIVER":       "memory",
		"JWT_SECRET_KEY":       "secret",
		"JWT_TTL":              "90m",
		"SERVER_PORT":          "9090",
		"LOG_LEVEL":            "debug",
		"AUTO_MIGRATE":         "true",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"R2_ACCOUNT_ID":        "acc",
		"R2_ACCESS_KEY_ID":     "key",
		"R2_SECRET_ACCESS_KEY": "secret",
		"R2_BUCKET_NAME":       "sheets",
		"R2_PUBLIC_BASE_URL":   "https://cdn.example",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory || cfg.DatabaseURL != "" {
		t.Errorf("storage: got %q with url %q", cfg.StorageDriver, cfg.DatabaseURL)
	}
	if cfg.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL: got %v, want 90m", cfg.JWTTTL)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort: got %d, want 9090", cfg.ServerPort)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel: got %v, want DEBUG", cfg.LogLevel)
	}
	if !cfg.AutoMigrate {
		t.Error("AutoMigrate: got false, want true")
	}
	if got := strings.Join(cfg.CORSAllowedOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("CORSAllowedOrigins: got %q", got)
	}
	if cfg.Archive == nil || cfg.Archive.BucketName != "sheets" {
		t.Errorf("Archive: got %+v", cfg.Archive)
	}
}

func TestLoad_Errors(t *testing.T) {
	base := map[string]string{
		"DATABASE_URL":   "postgres://localhost/matchmerit",
		"JWT_SECRET_KEY": "secret",
	}

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}, "DATABASE_URL"},
		{"missing jwt secret", map[string]string{"JWT_SECRET_KEY": ""}, "JWT_SECRET_KEY"},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}, "STORAGE_DRIVER"},
		{"port not a number", map[string]string{"SERVER_PORT": "http"}, "SERVER_PORT"},
		{"port out of range", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
		{"bad ttl", map[string]string{"JWT_TTL": "tomorrow"}, "JWT_TTL"},
		{"negative ttl", map[string]string{"JWT_TTL": "-1h"}, "JWT_TTL"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad auto migrate", map[string]string{"AUTO_MIGRATE": "sometimes"}, "AUTO_MIGRATE"},
		{"partial archive", map[string]string{"R2_BUCKET_NAME": "sheets"}, "R2_ACCESS_KEY_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := make(map[string]string, len(base)+len(tt.env))
			for k, v := range base {
				env[k] = v
			}
			for k, v := range tt.env {
				env[k] = v
			}
			setEnv(t, env)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load: got nil error, want one mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}
