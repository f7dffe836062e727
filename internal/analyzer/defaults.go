package analyzer

import (
	"fmt"
	"strings"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// DefaultAnalysis builds the fallback assessment from competitor averages.
// It is deterministic for a given keyword and competitor set.
func DefaultAnalysis(keyword string, competitors []models.CompetitorRecord) models.NicheAnalysis {
	prices := make([]float64, len(competitors))
	ratings := make([]float64, len(competitors))
	for i, c := range competitors {
		prices[i] = c.Price
		ratings[i] = c.Rating
	}
	avgPrice := models.MeanFloat64(prices)
	avgRating := models.MeanFloat64(ratings)

	return models.NicheAnalysis{
		MarketInsights:     fmt.Sprintf("Moderate competition with %d competitors found.", len(competitors)),
		DemandScore:        0.6,
		CompetitionScore:   0.5,
		MarginPotential:    0.4,
		EffortRequired:     0.5,
		NoveltyScore:       0.5,
		RiskAssessment:     "Standard market risk",
		ProfitabilityNotes: fmt.Sprintf("Average price: $%.2f, Average rating: %.1f", avgPrice, avgRating),
		SuggestedAngles: []string{
			keyword + " - Premium Edition",
			keyword + " - Beginner's Guide",
		},
		AIExplanation: "Analysis based on competitor data.",
	}
}

// DefaultMetadata builds fallback publishing metadata by templating the keyword
func DefaultMetadata(keyword string) models.Metadata {
	title, topic := keyword, keyword
	if strings.TrimSpace(keyword) == "" {
		title, topic = "Book Title", "this topic"
	}

	keywords := make([]string, models.MetadataKeywordCount)
	for i := range keywords {
		keywords[i] = keyword
	}

	return models.Metadata{
		Title:           title,
		Subtitle:        "A Comprehensive Guide",
		Keywords:        keywords,
		Description:     fmt.Sprintf("Discover %s in this comprehensive guide.", topic),
		BISACCategories: append([]string(nil), models.DefaultBISACCategories...),
		Blurb:           fmt.Sprintf("Explore %s with this essential guide.", topic),
	}
}

func cleanAngles(angles []string) []string {
	cleaned := make([]string, 0, len(angles))
	for _, angle := range angles {
		angle = strings.TrimSpace(angle)
		if angle == "" {
			continue
		}
		cleaned = append(cleaned, angle)
		if len(cleaned) == models.MaxSuggestedAngles {
			break
		}
	}
	return cleaned
}
