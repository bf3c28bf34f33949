package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classificador-web/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "GIN_MODE", "BACKEND_URL", "BACKEND_TIMEOUT"} {
		t.Setenv(key, "")
	}
	// Point at a file that does not exist so a stray config.yaml in the
	// working directory cannot leak into the test.
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("BackendURL: got %q, want %q", cfg.BackendURL, "http://localhost:5000")
	}
	if cfg.BackendTimeout != 30*time.Second {
		t.Errorf("BackendTimeout: got %v, want 30s", cfg.BackendTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("BACKEND_URL", "http://backend:5000")
	t.Setenv("BACKEND_TIMEOUT", "5s")

	cfg := config.Load()
	if cfg.Port != "3000" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "3000")
	}
	if cfg.BackendURL != "http://backend:5000" {
		t.Errorf("BackendURL: got %q, want %q", cfg.BackendURL, "http://backend:5000")
	}
	if cfg.BackendTimeout != 5*time.Second {
		t.Errorf("BackendTimeout: got %v, want 5s", cfg.BackendTimeout)
	}
}

func TestLoadYAMLFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"9000\"\nbackend_url: http://from-file:5000\n"
	if err := os.WriteFile(file, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("BACKEND_URL", "http://from-env:5000")

	cfg := config.Load()
	if cfg.Port != "9000" {
		t.Errorf("Port from file: got %q, want %q", cfg.Port, "9000")
	}
	if cfg.BackendURL != "http://from-env:5000" {
		t.Errorf("BackendURL: env must win, got %q", cfg.BackendURL)
	}
}
