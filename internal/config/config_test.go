package config_test

import (
	"testing"

	"github.com/socialsync/socialdb/internal/config"
)

// TestLoadDefaults tests the defaulted fields with a minimal environment.
func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, shielding the test from ambient env
	t.Setenv("PORT", "")
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_CONNECTION_LIMIT", "")
	t.Setenv("DB_DATABASE", "socialdb")
	t.Setenv("DB_USER", "app")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Expected default port, got %q", cfg.Port)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default db type, got %q", cfg.DBType)
	}
	if cfg.DBHost != "localhost" || cfg.DBPort != "3306" {
		t.Errorf("Unexpected host defaults: %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected default connection limit, got %d", cfg.DBConnectionLimit)
	}
}

// TestLoadOverrides tests that the environment wins over defaults.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_DATABASE", "socialdb")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_CONNECTION_LIMIT", "12")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBType != "postgres" || cfg.DBHost != "db.internal" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.DBConnectionLimit != 12 {
		t.Errorf("Expected connection limit 12, got %d", cfg.DBConnectionLimit)
	}
}

// TestLoadRequiredFields tests the required-field validation.
func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("DB_USER", "app")
	if _, err := config.Load(); err == nil {
		t.Error("Expected missing DB_DATABASE to fail")
	}

	t.Setenv("DB_DATABASE", "socialdb")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_TYPE", "mysql")
	if _, err := config.Load(); err == nil {
		t.Error("Expected missing DB_USER to fail")
	}

	// SQLite only needs the file path
	t.Setenv("DB_TYPE", "sqlite")
	if _, err := config.Load(); err != nil {
		t.Errorf("Expected sqlite without DB_USER to load, got %v", err)
	}
}

// TestLoadBadConnectionLimit tests that a malformed integer falls back to
// the default.
func TestLoadBadConnectionLimit(t *testing.T) {
	t.Setenv("DB_DATABASE", "socialdb")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_CONNECTION_LIMIT", "many")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected fallback connection limit, got %d", cfg.DBConnectionLimit)
	}
}
