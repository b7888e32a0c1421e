// Package config validates the loaded configuration before the flow uses it.
package config

import (
	"fmt"

	"github.com/aido-sh/aido/internal/domain"
)

// Validate ensures the config structure is consistent. Every failure is a
// *domain.ConfigError naming the offending property.
func Validate(cfg domain.Config) error {
	if len(cfg.Models) == 0 {
		return &domain.ConfigError{Property: "models", Reason: "at least one model must be configured"}
	}
	for i, model := range cfg.Models {
		if model.Name == "" {
			return &domain.ConfigError{
				Property: fmt.Sprintf("models[%d].name", i),
				Reason:   "must not be empty",
			}
		}
		if model.Endpoint == "" {
			return &domain.ConfigError{
				Property: fmt.Sprintf("models[%d].endpoint", i),
				Reason:   "must not be empty",
			}
		}
		if model.ModelID == "" {
			return &domain.ConfigError{
				Property: fmt.Sprintf("models[%d].model_id", i),
				Reason:   "must not be empty",
			}
		}
	}
	if name := cfg.Preferences.DefaultModel; name != "" {
		if _, ok := findModel(cfg, name); !ok {
			return &domain.ConfigError{
				Property: "preferences.default_model",
				Reason:   fmt.Sprintf("model %s not found in models list", name),
			}
		}
	}
	if cfg.Preferences.TimeoutSeconds < 0 {
		return &domain.ConfigError{
			Property: "preferences.timeout",
			Reason:   "must not be negative",
		}
	}
	return nil
}

func findModel(cfg domain.Config, name string) (domain.ModelDefinition, bool) {
	for _, model := range cfg.Models {
		if model.Name == name {
			return model, true
		}
	}
	return domain.ModelDefinition{}, false
}
