package config

import (
	"errors"
	"testing"

	"github.com/aido-sh/aido/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "gpt"},
		Models: []domain.ModelDefinition{
			{Name: "gpt", Endpoint: "https://api.openai.com/v1/chat/completions", ModelID: "gpt-4o-mini"},
		},
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.Config)
		property string
	}{
		{
			name:     "no models",
			mutate:   func(cfg *domain.Config) { cfg.Models = nil },
			property: "models",
		},
		{
			name:     "model without name",
			mutate:   func(cfg *domain.Config) { cfg.Models[0].Name = ""; cfg.Preferences.DefaultModel = "" },
			property: "models[0].name",
		},
		{
			name:     "model without endpoint",
			mutate:   func(cfg *domain.Config) { cfg.Models[0].Endpoint = "" },
			property: "models[0].endpoint",
		},
		{
			name:     "model without model id",
			mutate:   func(cfg *domain.Config) { cfg.Models[0].ModelID = "" },
			property: "models[0].model_id",
		},
		{
			name:     "unknown default model",
			mutate:   func(cfg *domain.Config) { cfg.Preferences.DefaultModel = "missing" },
			property: "preferences.default_model",
		},
		{
			name:     "negative timeout",
			mutate:   func(cfg *domain.Config) { cfg.Preferences.TimeoutSeconds = -5 },
			property: "preferences.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			var cfgErr *domain.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Property != tt.property {
				t.Fatalf("property = %q, want %q", cfgErr.Property, tt.property)
			}
		})
	}
}
