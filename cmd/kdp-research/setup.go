package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/assets"
	"github.com/selivandex/kdp-autostudio/internal/adapters/ai"
	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/internal/analyzer"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/templates"
)

// app holds what every command needs once configuration succeeded
type app struct {
	cfg       *config.Config
	templates *templates.Manager
	analyzer  *analyzer.Analyzer
}

// initApp loads configuration, initializes the logger and resolves the API key.
// It performs no network or browser activity.
func initApp(apiKeyFlag string) (*app, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	apiKey, err := cfg.ResolveAPIKey(apiKeyFlag)
	if err != nil {
		return nil, err
	}

	manager, err := templates.NewManagerWithValidation(assets.Templates(), assets.RequiredTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	provider := ai.NewOpenAIProvider(apiKey, &cfg.AI)
	logger.Info("completion provider configured",
		zap.String("provider", provider.GetName()),
		zap.String("model", cfg.AI.Model),
	)

	return &app{
		cfg:       cfg,
		templates: manager,
		analyzer:  analyzer.NewAnalyzer(provider, manager, &cfg.AI),
	}, nil
}

func initConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
