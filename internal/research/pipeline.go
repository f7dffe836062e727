package research

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// Collector gathers competitor listings for a keyword
type Collector interface {
	Collect(ctx context.Context, keyword string, maxResults int) []models.CompetitorRecord
}

// Analyzer assesses the niche behind a keyword
type Analyzer interface {
	Analyze(ctx context.Context, keyword string, competitors []models.CompetitorRecord) models.NicheAnalysis
}

// Scorer turns an analysis into scored ideas
type Scorer interface {
	Score(keyword string, competitors []models.CompetitorRecord, analysis models.NicheAnalysis) []models.ScoredIdea
}

// Report is the outcome of one research run
type Report struct {
	RunID     string
	Keywords  []string
	Ideas     []models.ScoredIdea
	Completed int
	Duration  time.Duration
}

// Pipeline runs collect, analyze and score for each keyword in order
type Pipeline struct {
	collector  Collector
	analyzer   Analyzer
	scorer     Scorer
	maxResults int
}

// NewPipeline creates a research pipeline
func NewPipeline(collector Collector, analyzer Analyzer, scorer Scorer, maxResults int) *Pipeline {
	return &Pipeline{
		collector:  collector,
		analyzer:   analyzer,
		scorer:     scorer,
		maxResults: maxResults,
	}
}

// Run processes keywords sequentially and appends ideas in input order.
// Cancellation stops before the next keyword; ideas gathered so far are kept.
func (p *Pipeline) Run(ctx context.Context, keywords []string) *Report {
	report := &Report{
		RunID:    uuid.NewString(),
		Keywords: keywords,
		Ideas:    []models.ScoredIdea{},
	}
	log := logger.With(zap.String("run_id", report.RunID))
	start := time.Now()

	log.Info("research started", zap.Strings("keywords", keywords), zap.Int("max_results", p.maxResults))

	for i, keyword := range keywords {
		if err := ctx.Err(); err != nil {
			log.Warn("research interrupted",
				zap.Int("completed", report.Completed),
				zap.Int("remaining", len(keywords)-i),
				zap.Error(err),
			)
			break
		}

		log.Info("researching keyword",
			zap.String("keyword", keyword),
			zap.Int("index", i+1),
			zap.Int("total", len(keywords)),
		)

		competitors := p.collector.Collect(ctx, keyword, p.maxResults)
		log.Info("competitors collected", zap.String("keyword", keyword), zap.Int("count", len(competitors)))

		analysis := p.analyzer.Analyze(ctx, keyword, competitors)
		ideas := p.scorer.Score(keyword, competitors, analysis)
		log.Info("ideas generated", zap.String("keyword", keyword), zap.Int("count", len(ideas)))

		report.Ideas = append(report.Ideas, ideas...)
		report.Completed++
	}

	report.Duration = time.Since(start)
	log.Info("research finished",
		zap.Int("keywords", report.Completed),
		zap.Int("ideas", len(report.Ideas)),
		zap.Duration("duration", report.Duration),
	)

	return report
}

// TopIdeas returns up to n ideas ordered by score, highest first. Ties keep input order.
func (r *Report) TopIdeas(n int) []models.ScoredIdea {
	sorted := append([]models.ScoredIdea(nil), r.Ideas...)
	sortByScore(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sortByScore(ideas []models.ScoredIdea) {
	slices.SortStableFunc(ideas, func(a, b models.ScoredIdea) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
}
