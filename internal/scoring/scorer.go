package scoring

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// MaxVariations is the number of suggested angles turned into extra ideas
const MaxVariations = 3

// Scorer converts a niche analysis into ranked book ideas
type Scorer struct {
	weights models.ScoringWeights
}

// NewScorer creates a scorer with explicit weights. Weights are used as given.
func NewScorer(weights models.ScoringWeights) *Scorer {
	if !weights.IsNormalized() {
		logger.Warn("scoring weights do not sum to 1, scores may leave [0,1]",
			zap.Float64("sum", weights.Sum()),
		)
	}
	return &Scorer{weights: weights}
}

// Score emits the primary idea for keyword followed by one idea per suggested angle, up to MaxVariations.
// competitors are accepted for interface symmetry and do not influence the result.
func (s *Scorer) Score(keyword string, competitors []models.CompetitorRecord, analysis models.NicheAnalysis) []models.ScoredIdea {
	angles := analysis.SuggestedAngles
	if len(angles) > MaxVariations {
		angles = angles[:MaxVariations]
	}

	ideas := make([]models.ScoredIdea, 0, 1+len(angles))
	ideas = append(ideas, s.newIdea(keyword, titleCase(keyword), analysis))
	for _, angle := range angles {
		ideas = append(ideas, s.newIdea(angle, angle, analysis))
	}

	logger.Debug("ideas scored",
		zap.String("keyword", keyword),
		zap.Int("competitors", len(competitors)),
		zap.Int("ideas", len(ideas)),
		zap.Float64("score", ideas[0].Score),
	)

	return ideas
}

func (s *Scorer) newIdea(keyword, title string, analysis models.NicheAnalysis) models.ScoredIdea {
	return models.ScoredIdea{
		Keyword:       keyword,
		Title:         title,
		Subtitle:      nil,
		Demand:        round3(analysis.DemandScore),
		Competition:   round3(analysis.CompetitionScore),
		Margin:        round3(analysis.MarginPotential),
		Effort:        round3(analysis.EffortRequired),
		Novelty:       round3(analysis.NoveltyScore),
		Score:         round3(s.OverallScore(analysis)),
		Risk:          analysis.RiskAssessment,
		Profitability: analysis.ProfitabilityNotes,
		AIExplanation: analysis.AIExplanation,
		Status:        models.IdeaPending,
	}
}

// OverallScore computes the weighted score. Competition and effort count inversely.
func (s *Scorer) OverallScore(analysis models.NicheAnalysis) float64 {
	w := s.weights
	return w.Demand*analysis.DemandScore +
		w.Competition*(1-analysis.CompetitionScore) +
		w.Margin*analysis.MarginPotential +
		w.Effort*(1-analysis.EffortRequired) +
		w.Novelty*analysis.NoveltyScore
}

func round3(v float64) float64 {
	return models.ToFloat64(decimal.NewFromFloat(v).Round(3))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
