package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

var bisacPattern = regexp.MustCompile(`^[A-Z]{3}\d{6}$`)

// Result holds the outcome of a metadata check.
// Errors block publishing, warnings are advisory.
type Result struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateMetadata checks metadata against KDP listing limits
func ValidateMetadata(m models.Metadata) Result {
	r := Result{Errors: []string{}, Warnings: []string{}}

	switch n := utf8.RuneCountInString(strings.TrimSpace(m.Title)); {
	case n == 0:
		r.errorf("title is required")
	case n > models.MaxTitleLength:
		r.errorf("title is %d characters, max %d", n, models.MaxTitleLength)
	}

	if n := utf8.RuneCountInString(m.Subtitle); n > models.MaxSubtitleLength {
		r.errorf("subtitle is %d characters, max %d", n, models.MaxSubtitleLength)
	}

	validateKeywords(&r, m.Keywords)

	if n := utf8.RuneCountInString(m.Description); n < models.MinDescriptionLength || n > models.MaxDescriptionLength {
		r.errorf("description is %d characters, expected %d-%d", n, models.MinDescriptionLength, models.MaxDescriptionLength)
	}

	if len(m.BISACCategories) != models.BISACCategoryCount {
		r.errorf("expected %d BISAC categories, got %d", models.BISACCategoryCount, len(m.BISACCategories))
	}
	for _, code := range m.BISACCategories {
		if !bisacPattern.MatchString(code) {
			r.errorf("invalid BISAC code %q", code)
		}
	}

	if n := utf8.RuneCountInString(m.Blurb); n < models.MinBlurbLength || n > models.MaxBlurbLength {
		r.warnf("blurb is %d characters, recommended %d-%d", n, models.MinBlurbLength, models.MaxBlurbLength)
	}

	r.Passed = len(r.Errors) == 0
	return r
}

func validateKeywords(r *Result, keywords []string) {
	if len(keywords) != models.MetadataKeywordCount {
		r.errorf("expected %d keywords, got %d", models.MetadataKeywordCount, len(keywords))
	}

	seen := make(map[string]bool, len(keywords))
	for i, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			r.errorf("keyword %d is empty", i+1)
			continue
		}
		if seen[normalized] {
			r.warnf("duplicate keyword %q", kw)
		}
		seen[normalized] = true
	}
}
