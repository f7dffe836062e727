package analyzer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/assets"
	"github.com/selivandex/kdp-autostudio/internal/adapters/ai"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// GenerateMetadata writes publishing metadata for idea. Only idea.Keyword is required.
// Any failure yields DefaultMetadata.
func (a *Analyzer) GenerateMetadata(ctx context.Context, idea models.ScoredIdea) models.Metadata {
	metadata, err := a.requestMetadata(ctx, idea)
	if err != nil {
		logger.Warn("metadata generation failed, using default metadata",
			zap.String("keyword", idea.Keyword),
			zap.String("provider", a.completer.GetName()),
			zap.Error(err),
		)
		return DefaultMetadata(idea.Keyword)
	}
	return metadata
}

func (a *Analyzer) requestMetadata(ctx context.Context, idea models.ScoredIdea) (models.Metadata, error) {
	data := struct {
		Keyword     string
		Title       string
		Explanation string
	}{
		Keyword:     idea.Keyword,
		Title:       idea.Title,
		Explanation: idea.AIExplanation,
	}

	output, err := a.prompts.ExecuteTemplate(assets.GenerateMetadataTemplate, data)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("failed to render metadata prompt: %w", err)
	}
	system, user := ai.SplitPrompt(output)

	content, err := a.completer.Complete(ctx, ai.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: a.metadataTemperature,
		JSONMode:    true,
	})
	if err != nil {
		return models.Metadata{}, fmt.Errorf("completion request failed: %w", err)
	}

	var metadata models.Metadata
	if err := ai.DecodeJSONObject(content, &metadata); err != nil {
		return models.Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return normalizeMetadata(metadata, idea.Keyword), nil
}

// normalizeMetadata fills empty fields from the defaults and enforces listing limits
func normalizeMetadata(m models.Metadata, keyword string) models.Metadata {
	defaults := DefaultMetadata(keyword)

	m.Title = truncateRunes(stringOrDefault(strings.TrimSpace(m.Title), defaults.Title), models.MaxTitleLength)
	m.Subtitle = truncateRunes(stringOrDefault(strings.TrimSpace(m.Subtitle), defaults.Subtitle), models.MaxSubtitleLength)
	m.Description = truncateRunes(stringOrDefault(strings.TrimSpace(m.Description), defaults.Description), models.MaxDescriptionLength)
	m.Blurb = truncateRunes(stringOrDefault(strings.TrimSpace(m.Blurb), defaults.Blurb), models.MaxBlurbLength)
	m.Keywords = fitList(m.Keywords, models.MetadataKeywordCount, func(int) string { return keyword })
	m.BISACCategories = fitList(m.BISACCategories, models.BISACCategoryCount, func(i int) string {
		return models.DefaultBISACCategories[i%len(models.DefaultBISACCategories)]
	})

	return m
}

// fitList drops blank entries, truncates to n and pads with fill(index)
func fitList(values []string, n int, fill func(i int) string) []string {
	out := make([]string, 0, n)
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && len(out) < n {
			out = append(out, v)
		}
	}
	for len(out) < n {
		out = append(out, fill(len(out)))
	}
	return out
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}
