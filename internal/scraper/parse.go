package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

var (
	ratingOutOfPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*out\s+of`)
	numberPattern      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	integerPattern     = regexp.MustCompile(`\d+`)
)

// MaxRating is the top of the marketplace star scale
const MaxRating = 5.0

// ParsePrice converts listing price text such as "$12,999.00" to a float.
// Malformed or negative input yields 0.
func ParsePrice(text string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	cleaned = strings.TrimLeftFunc(cleaned, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != '-'
	})
	cleaned = strings.TrimRightFunc(cleaned, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if cleaned == "" {
		return 0
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil || price.IsNegative() {
		return 0
	}
	return models.ToFloat64(price)
}

// ParseRating extracts the star rating from text such as "4.5 out of 5 stars".
// The number in front of "out of" wins; otherwise the first numeric token is used.
// Text that only names the scale ("out of 5 stars") yields 0, as does anything above 5.
func ParseRating(text string) float64 {
	var token string
	if m := ratingOutOfPattern.FindStringSubmatch(text); m != nil {
		token = m[1]
	} else if !strings.Contains(strings.ToLower(text), "out of") {
		token = numberPattern.FindString(text)
	}
	if token == "" {
		return 0
	}

	rating, err := strconv.ParseFloat(token, 64)
	if err != nil || rating < 0 || rating > MaxRating {
		return 0
	}
	return rating
}

// ParseReviewCount extracts the first integer from text such as "1,234 ratings"
func ParseReviewCount(text string) int {
	cleaned := strings.ReplaceAll(text, ",", "")
	token := integerPattern.FindString(cleaned)
	if token == "" {
		return 0
	}

	count, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return count
}
