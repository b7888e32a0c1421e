// Package doctor runs environment diagnostics for the doctor subcommand.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	appconfig "github.com/aido-sh/aido/internal/application/config"
	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Clipboard      ports.Clipboard
	HistoryStore   ports.HistoryStore
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if verr := appconfig.Validate(cfg); verr != nil {
		checks = append(checks, fail("Config file", verr.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("valid, %d model(s)", len(cfg.Models))))
	}

	checks = append(checks, credentialCheck(cfg.Models))

	if s.Clipboard != nil && s.Clipboard.Enabled() {
		checks = append(checks, ok("Clipboard", "available"))
	} else {
		checks = append(checks, warn("Clipboard", "not available on this platform"))
	}

	if s.HistoryStore != nil {
		if _, herr := s.HistoryStore.Records(1, ""); herr == nil {
			checks = append(checks, ok("History", "store reachable"))
		} else {
			checks = append(checks, warn("History", herr.Error()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func credentialCheck(models []domain.ModelDefinition) domain.HealthCheck {
	var missing []string
	for _, model := range models {
		if model.AuthEnvVar == "" {
			continue
		}
		if os.Getenv(model.AuthEnvVar) == "" {
			missing = append(missing, model.AuthEnvVar)
		}
	}
	if len(missing) > 0 {
		return warn("API keys", fmt.Sprintf("unset: %s", strings.Join(missing, ", ")))
	}
	return ok("API keys", "detected for configured models")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Details: details}
}
