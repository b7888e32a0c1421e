// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/aido-sh/aido/internal/application/doctor"
	"github.com/aido-sh/aido/internal/application/flow"
	"github.com/aido-sh/aido/internal/infrastructure/ai"
	"github.com/aido-sh/aido/internal/infrastructure/config"
	"github.com/aido-sh/aido/internal/infrastructure/envprobe"
	"github.com/aido-sh/aido/internal/infrastructure/executor"
	"github.com/aido-sh/aido/internal/infrastructure/history"
	"github.com/aido-sh/aido/internal/infrastructure/i18n"
	"github.com/aido-sh/aido/internal/infrastructure/security"
	"github.com/aido-sh/aido/internal/pkg/logger"
	"github.com/aido-sh/aido/internal/ports"
)

// Container holds the dependency graph.
type Container struct {
	FlowService    *flow.Service
	DoctorService  *doctor.Service
	ConfigLoader   *config.FileLoader
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryStore
	Translator     ports.Translator
}

// BuildContainer constructs the dependency graph. The terminal-facing
// adapters (prompter, renderer, clipboard) are attached by the CLI layer,
// which owns stdio.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	translator := i18n.Load(cfg.UI.Language)

	var historyStore ports.HistoryStore
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore(cfg.History.Path)
	}

	var guardrail ports.SecurityService
	if cfg.Security.Enabled {
		g, gerr := security.NewGuardrail(cfg.Security.RulesFile)
		if gerr != nil {
			g, gerr = security.NewGuardrail("")
			if gerr != nil {
				return nil, gerr
			}
		}
		guardrail = g
	}

	flowService := &flow.Service{
		ConfigProvider:  cfgLoader,
		ProviderFactory: ai.NewFactory(),
		EnvProbe:        envprobe.NewBasicProbe(),
		Executor:        executor.NewLocalExecutor(cfg.Execution.Shell),
		HistoryStore:    historyStore,
		Security:        guardrail,
		Translator:      translator,
		Logger:          log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		HistoryStore:   historyStore,
	}

	return &Container{
		FlowService:    flowService,
		DoctorService:  doctorService,
		ConfigLoader:   cfgLoader,
		ConfigProvider: cfgLoader,
		HistoryStore:   historyStore,
		Translator:     translator,
	}, nil
}
