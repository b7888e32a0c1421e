package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aido-sh/aido/internal/domain"
)

func TestLoadSeedsDefaultConfigOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aido", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, serr := os.Stat(path); serr != nil {
		t.Fatalf("default config not written: %v", serr)
	}
	if len(cfg.Models) == 0 {
		t.Fatal("default config carries no models")
	}
	if cfg.Preferences.DefaultModel == "" {
		t.Fatal("default model not hydrated")
	}
	if cfg.Preferences.TimeoutSeconds != 120 {
		t.Fatalf("timeout = %d, want 120", cfg.Preferences.TimeoutSeconds)
	}
	if cfg.UI.Language != "en" {
		t.Fatalf("language = %q, want en", cfg.UI.Language)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: "1"
preferences:
  default_model: local
  silent: true
models:
  - name: local
    endpoint: http://localhost:11434/v1/chat/completions
    model_id: llama3.1
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preferences.DefaultModel != "local" || !cfg.Preferences.Silent {
		t.Fatalf("preferences mismatch: %+v", cfg.Preferences)
	}
	if len(cfg.Models) != 1 || cfg.Models[0].ModelID != "llama3.1" {
		t.Fatalf("models mismatch: %+v", cfg.Models)
	}
}

func TestLoadInvalidYAMLIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("models: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileLoader(path).Load(context.Background())
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Property != path {
		t.Fatalf("property = %q, want %q", cfgErr.Property, path)
	}
}

func TestPathPrefersEnvironmentOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("AIDO_CONFIG", custom)

	if got := NewFileLoader("").Path(); got != custom {
		t.Fatalf("Path() = %q, want %q", got, custom)
	}
}

func TestResetRewritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("models: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if len(cfg.Models) == 0 {
		t.Fatal("reset config carries no models")
	}
}
