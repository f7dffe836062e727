package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/internal/adapters/browser"
	"github.com/selivandex/kdp-autostudio/internal/adapters/telegram"
	"github.com/selivandex/kdp-autostudio/internal/research"
	"github.com/selivandex/kdp-autostudio/internal/scoring"
	"github.com/selivandex/kdp-autostudio/internal/scraper"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
)

type researchOptions struct {
	keywords      string
	apiKey        string
	output        string
	maxResults    int
	maxResultsSet bool
}

func runResearch(ctx context.Context, opts researchOptions) error {
	keywords := research.ParseKeywords(opts.keywords)
	if len(keywords) == 0 {
		return fmt.Errorf("no keywords given")
	}

	a, err := initApp(opts.apiKey)
	if err != nil {
		return err
	}
	defer logger.Sync()

	maxResults := a.cfg.Scraper.MaxResults
	if opts.maxResultsSet {
		maxResults = opts.maxResults
	}
	if maxResults < 1 {
		return fmt.Errorf("--max-results must be at least 1")
	}

	collector := scraper.NewCollector(browser.NewRodLauncher(&a.cfg.Scraper), &a.cfg.Scraper)
	scorer := scoring.NewScorer(a.cfg.Scoring)
	pipeline := research.NewPipeline(collector, a.analyzer, scorer, maxResults)

	report := pipeline.Run(ctx, keywords)

	if err := research.WriteIdeas(opts.output, report.Ideas); err != nil {
		return err
	}
	logger.Info("ideas written",
		zap.String("output", opts.output),
		zap.Int("ideas", len(report.Ideas)),
	)
	fmt.Printf("Wrote %d ideas for %d keywords to %s\n", len(report.Ideas), report.Completed, opts.output)

	notify(a, report, opts.output)

	return nil
}

// notify sends the optional Telegram summary; failures are logged only
func notify(a *app, report *research.Report, output string) {
	if !a.cfg.TelegramEnabled() {
		return
	}

	notifier, err := telegram.NewNotifier(&a.cfg.Telegram, a.templates)
	if err != nil {
		logger.Warn("telegram notifier unavailable", zap.Error(err))
		return
	}

	if err := notifier.SendResearchSummary(report, output); err != nil {
		logger.Warn("failed to send research summary", zap.Error(err))
	}
}
