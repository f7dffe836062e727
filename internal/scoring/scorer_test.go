package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

func analysisWithAngles(angles ...string) models.NicheAnalysis {
	return models.NicheAnalysis{
		DemandScore:        0.8,
		CompetitionScore:   0.3,
		MarginPotential:    0.6,
		EffortRequired:     0.4,
		NoveltyScore:       0.7,
		RiskAssessment:     "Seasonal",
		ProfitabilityNotes: "Good",
		SuggestedAngles:    angles,
		AIExplanation:      "Solid niche",
	}
}

func TestScore_IdeaCount(t *testing.T) {
	tests := []struct {
		name   string
		angles []string
		want   int
	}{
		{"no angles", nil, 1},
		{"one angle", []string{"a"}, 2},
		{"three angles", []string{"a", "b", "c"}, 4},
		{"five angles", []string{"a", "b", "c", "d", "e"}, 4},
	}

	scorer := NewScorer(models.DefaultScoringWeights())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas := scorer.Score("gardening", nil, analysisWithAngles(tt.angles...))
			if len(ideas) != tt.want {
				t.Errorf("expected %d ideas, got %d", tt.want, len(ideas))
			}
		})
	}
}

func TestScore_Formula(t *testing.T) {
	scorer := NewScorer(models.DefaultScoringWeights())
	analysis := analysisWithAngles()

	// 0.35*0.8 + 0.25*0.7 + 0.15*0.6 + 0.15*0.6 + 0.10*0.7 = 0.705
	if got := scorer.OverallScore(analysis); math.Abs(got-0.705) > 1e-9 {
		t.Errorf("OverallScore() = %v, want 0.705", got)
	}

	idea := scorer.Score("gardening", nil, analysis)[0]
	if idea.Score != 0.705 {
		t.Errorf("idea score = %v, want 0.705", idea.Score)
	}
}

func TestScore_PrimaryAndVariations(t *testing.T) {
	scorer := NewScorer(models.DefaultScoringWeights())
	angles := []string{"container gardening for renters", "Kids' Garden Journal", "herb basics", "dropped"}

	ideas := scorer.Score("vegetable gardening", nil, analysisWithAngles(angles...))

	primary := ideas[0]
	if primary.Keyword != "vegetable gardening" || primary.Title != "Vegetable Gardening" {
		t.Errorf("unexpected primary idea %q / %q", primary.Keyword, primary.Title)
	}
	for i, idea := range ideas[1:] {
		if idea.Keyword != angles[i] || idea.Title != angles[i] {
			t.Errorf("variation %d: expected angle verbatim, got %q / %q", i, idea.Keyword, idea.Title)
		}
	}

	for _, idea := range ideas {
		if idea.Subtitle != nil {
			t.Errorf("%s: subtitle must be null", idea.Keyword)
		}
		if idea.Status != models.IdeaPending {
			t.Errorf("%s: expected pending status, got %q", idea.Keyword, idea.Status)
		}
		if idea.Risk != "Seasonal" || idea.Profitability != "Good" || idea.AIExplanation != "Solid niche" {
			t.Errorf("%s: analysis text not carried over: %+v", idea.Keyword, idea)
		}
		if idea.Score != primary.Score {
			t.Errorf("%s: variations share the primary score, got %v", idea.Keyword, idea.Score)
		}
	}
}

func TestScore_RoundsToThreeDecimals(t *testing.T) {
	scorer := NewScorer(models.DefaultScoringWeights())
	analysis := models.NicheAnalysis{
		DemandScore:      0.123456,
		CompetitionScore: 0.98765,
		MarginPotential:  0.33333,
		EffortRequired:   0.5,
		NoveltyScore:     0.0004,
	}

	idea := scorer.Score("x", nil, analysis)[0]

	checks := map[string][2]float64{
		"demand":      {idea.Demand, 0.123},
		"competition": {idea.Competition, 0.988},
		"margin":      {idea.Margin, 0.333},
		"effort":      {idea.Effort, 0.5},
		"novelty":     {idea.Novelty, 0},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %v, want %v", name, c[0], c[1])
		}
	}

	if math.Abs(idea.Score*1000-math.Round(idea.Score*1000)) > 1e-9 {
		t.Errorf("score %v not rounded to 3 decimals", idea.Score)
	}
}

func TestScore_RangeWithNormalizedWeights(t *testing.T) {
	scorer := NewScorer(models.DefaultScoringWeights())
	values := []float64{0, 0.25, 0.5, 1}

	for _, d := range values {
		for _, c := range values {
			for _, e := range values {
				analysis := models.NicheAnalysis{DemandScore: d, CompetitionScore: c, MarginPotential: d, EffortRequired: e, NoveltyScore: c}
				for _, idea := range scorer.Score("k", nil, analysis) {
					if idea.Score < 0 || idea.Score > 1 {
						t.Fatalf("score %v out of range for %+v", idea.Score, analysis)
					}
				}
			}
		}
	}
}

func TestScore_WeightsNotRenormalized(t *testing.T) {
	scorer := NewScorer(models.ScoringWeights{Demand: 2})

	idea := scorer.Score("k", nil, models.NicheAnalysis{DemandScore: 0.9})[0]
	if idea.Score != 1.8 {
		t.Errorf("expected unnormalized score 1.8, got %v", idea.Score)
	}
}

func TestScore_JSONShape(t *testing.T) {
	ideas := NewScorer(models.DefaultScoringWeights()).Score("chess", nil, analysisWithAngles())

	data, err := json.Marshal(ideas[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"keyword", "title", "subtitle", "demand", "competition", "margin", "effort", "novelty", "score", "risk", "profitability", "ai_explanation", "status"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if fields["subtitle"] != nil {
		t.Errorf("subtitle should serialize as null, got %v", fields["subtitle"])
	}
}
