package models

// NicheAnalysis represents the market assessment for a single keyword
type NicheAnalysis struct {
	MarketInsights     string   `json:"market_insights"`
	RiskAssessment     string   `json:"risk_assessment"`
	ProfitabilityNotes string   `json:"profitability_notes"`
	AIExplanation      string   `json:"ai_explanation"`
	SuggestedAngles    []string `json:"suggested_angles"`
	DemandScore        float64  `json:"demand_score"`
	CompetitionScore   float64  `json:"competition_score"`
	MarginPotential    float64  `json:"margin_potential"`
	EffortRequired     float64  `json:"effort_required"`
	NoveltyScore       float64  `json:"novelty_score"`
}

// Defaults applied when an assessment omits a field
const (
	DefaultScore         = 0.5
	DefaultRisk          = "Standard risk"
	DefaultProfitability = "Moderate potential"
	DefaultExplanation   = "Analysis completed."
	MaxSuggestedAngles   = 5
)
