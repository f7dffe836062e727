package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/assets"
	"github.com/selivandex/kdp-autostudio/internal/adapters/ai"
	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
	"github.com/selivandex/kdp-autostudio/pkg/templates"
)

// MaxPromptCompetitors caps how many listings are summarized in the analysis prompt
const MaxPromptCompetitors = 10

// Analyzer turns competitor data into a niche assessment using a completion service.
// Every operation degrades to deterministic defaults instead of returning an error.
type Analyzer struct {
	completer           ai.Completer
	prompts             templates.Renderer
	analysisTemperature float32
	metadataTemperature float32
}

// NewAnalyzer creates an analyzer
func NewAnalyzer(completer ai.Completer, prompts templates.Renderer, cfg *config.AIConfig) *Analyzer {
	return &Analyzer{
		completer:           completer,
		prompts:             prompts,
		analysisTemperature: cfg.AnalysisTemperature,
		metadataTemperature: cfg.MetadataTemperature,
	}
}

// Analyze assesses the niche for keyword. Any failure yields DefaultAnalysis.
func (a *Analyzer) Analyze(ctx context.Context, keyword string, competitors []models.CompetitorRecord) models.NicheAnalysis {
	analysis, err := a.requestAnalysis(ctx, keyword, competitors)
	if err != nil {
		logger.Warn("niche analysis failed, using default analysis",
			zap.String("keyword", keyword),
			zap.String("provider", a.completer.GetName()),
			zap.Error(err),
		)
		return DefaultAnalysis(keyword, competitors)
	}

	logger.Debug("niche analysis completed",
		zap.String("keyword", keyword),
		zap.Float64("demand", analysis.DemandScore),
		zap.Float64("competition", analysis.CompetitionScore),
		zap.Int("angles", len(analysis.SuggestedAngles)),
	)

	return analysis
}

func (a *Analyzer) requestAnalysis(ctx context.Context, keyword string, competitors []models.CompetitorRecord) (models.NicheAnalysis, error) {
	system, user, err := a.buildAnalysisPrompt(keyword, competitors)
	if err != nil {
		return models.NicheAnalysis{}, err
	}

	content, err := a.completer.Complete(ctx, ai.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: a.analysisTemperature,
		JSONMode:    true,
	})
	if err != nil {
		return models.NicheAnalysis{}, fmt.Errorf("completion request failed: %w", err)
	}

	return parseAnalysis(content)
}

func (a *Analyzer) buildAnalysisPrompt(keyword string, competitors []models.CompetitorRecord) (string, string, error) {
	if len(competitors) > MaxPromptCompetitors {
		competitors = competitors[:MaxPromptCompetitors]
	}

	data := struct {
		Keyword     string
		Competitors []models.CompetitorRecord
	}{
		Keyword:     keyword,
		Competitors: competitors,
	}

	output, err := a.prompts.ExecuteTemplate(assets.AnalyzeNicheTemplate, data)
	if err != nil {
		return "", "", fmt.Errorf("failed to render analysis prompt: %w", err)
	}

	system, user := ai.SplitPrompt(output)
	return system, user, nil
}

// rawAnalysis mirrors the requested JSON schema; pointers detect missing scores
type rawAnalysis struct {
	MarketInsights     string   `json:"market_insights"`
	DemandScore        *float64 `json:"demand_score"`
	CompetitionScore   *float64 `json:"competition_score"`
	MarginPotential    *float64 `json:"margin_potential"`
	EffortRequired     *float64 `json:"effort_required"`
	NoveltyScore       *float64 `json:"novelty_score"`
	RiskAssessment     string   `json:"risk_assessment"`
	ProfitabilityNotes string   `json:"profitability_notes"`
	SuggestedAngles    []string `json:"suggested_angles"`
	AIExplanation      string   `json:"ai_explanation"`
}

func parseAnalysis(content string) (models.NicheAnalysis, error) {
	var raw rawAnalysis
	if err := ai.DecodeJSONObject(content, &raw); err != nil {
		return models.NicheAnalysis{}, fmt.Errorf("failed to parse analysis: %w", err)
	}

	return models.NicheAnalysis{
		MarketInsights:     raw.MarketInsights,
		DemandScore:        scoreOrDefault(raw.DemandScore),
		CompetitionScore:   scoreOrDefault(raw.CompetitionScore),
		MarginPotential:    scoreOrDefault(raw.MarginPotential),
		EffortRequired:     scoreOrDefault(raw.EffortRequired),
		NoveltyScore:       scoreOrDefault(raw.NoveltyScore),
		RiskAssessment:     stringOrDefault(raw.RiskAssessment, models.DefaultRisk),
		ProfitabilityNotes: stringOrDefault(raw.ProfitabilityNotes, models.DefaultProfitability),
		SuggestedAngles:    cleanAngles(raw.SuggestedAngles),
		AIExplanation:      stringOrDefault(raw.AIExplanation, models.DefaultExplanation),
	}, nil
}

// scoreOrDefault keeps scores inside [0,1]; missing or out-of-range values become the neutral default
func scoreOrDefault(v *float64) float64 {
	if v == nil || *v != *v || *v < 0 || *v > 1 {
		return models.DefaultScore
	}
	return *v
}

func stringOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
