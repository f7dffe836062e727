package models

// IdeaStatus represents the review state of a book idea
type IdeaStatus string

const (
	IdeaPending      IdeaStatus = "pending"
	IdeaApproved     IdeaStatus = "approved"
	IdeaRejected     IdeaStatus = "rejected"
	IdeaInProduction IdeaStatus = "in_production"
)

// ScoredIdea represents a candidate book concept with its viability scores
type ScoredIdea struct {
	Subtitle      *string    `json:"subtitle"`
	Keyword       string     `json:"keyword"`
	Title         string     `json:"title"`
	Risk          string     `json:"risk"`
	Profitability string     `json:"profitability"`
	AIExplanation string     `json:"ai_explanation"`
	Status        IdeaStatus `json:"status"`
	Demand        float64    `json:"demand"`
	Competition   float64    `json:"competition"`
	Margin        float64    `json:"margin"`
	Effort        float64    `json:"effort"`
	Novelty       float64    `json:"novelty"`
	Score         float64    `json:"score"`
}

// IsValid reports whether the status is one of the known review states
func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaPending, IdeaApproved, IdeaRejected, IdeaInProduction:
		return true
	}
	return false
}
