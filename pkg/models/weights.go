package models

import (
	"fmt"
	"math"
)

// ScoringWeights represents the weight of each factor in the overall idea score
type ScoringWeights struct {
	Demand      float64 `json:"demand"`
	Competition float64 `json:"competition"`
	Margin      float64 `json:"margin"`
	Effort      float64 `json:"effort"`
	Novelty     float64 `json:"novelty"`
}

// DefaultScoringWeights returns the standard weighting
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Demand:      0.35,
		Competition: 0.25,
		Margin:      0.15,
		Effort:      0.15,
		Novelty:     0.10,
	}
}

// Sum returns total of all weights
func (w ScoringWeights) Sum() float64 {
	return w.Demand + w.Competition + w.Margin + w.Effort + w.Novelty
}

// IsNormalized reports whether weights sum to 1 within tolerance
func (w ScoringWeights) IsNormalized() bool {
	return math.Abs(w.Sum()-1.0) < 1e-6
}

// Validate checks that no weight is negative
func (w ScoringWeights) Validate() error {
	named := map[string]float64{
		"demand":      w.Demand,
		"competition": w.Competition,
		"margin":      w.Margin,
		"effort":      w.Effort,
		"novelty":     w.Novelty,
	}
	for name, value := range named {
		if value < 0 || math.IsNaN(value) {
			return fmt.Errorf("%s weight must be non-negative, got %v", name, value)
		}
	}
	if w.Sum() == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}
