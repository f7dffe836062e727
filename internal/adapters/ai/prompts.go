package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// PromptSeparator splits a rendered prompt template into system and user parts
const PromptSeparator = "=== USER PROMPT ==="

var markdownFence = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// SplitPrompt splits rendered template output into system and user prompts.
// Without a separator the whole output is the user prompt.
func SplitPrompt(output string) (systemPrompt string, userPrompt string) {
	idx := strings.Index(output, PromptSeparator)
	if idx == -1 {
		return "", strings.TrimSpace(output)
	}

	systemPrompt = strings.TrimSpace(output[:idx])
	userPrompt = strings.TrimSpace(output[idx+len(PromptSeparator):])
	return systemPrompt, userPrompt
}

// ExtractJSONObject returns the first JSON object in text that might contain markdown or prose.
// The object is read with a streaming decoder starting at the first '{', so nested braces and
// trailing text are handled. If that fails, the first markdown fence holding a '{' is tried,
// then the greedy span from the first '{' to the last '}'.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	if start < 0 {
		return nil, ErrNoJSON
	}

	if raw, ok := firstObject(text); ok {
		return raw, nil
	}

	for _, matches := range markdownFence.FindAllStringSubmatch(text, -1) {
		if raw, ok := firstObject(matches[1]); ok {
			return raw, nil
		}
	}

	end := strings.LastIndex(text, "}")
	if end > start {
		span := []byte(text[start : end+1])
		if json.Valid(span) {
			return json.RawMessage(span), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoJSON, truncateContent(text[start:], 200))
}

// firstObject decodes one JSON object starting at the first '{' in text
func firstObject(text string) (json.RawMessage, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return nil, false
	}

	var raw json.RawMessage
	dec := json.NewDecoder(strings.NewReader(text[start:]))
	if err := dec.Decode(&raw); err != nil || !isObject(raw) {
		return nil, false
	}
	return raw, true
}

// DecodeJSONObject extracts the first JSON object from text and unmarshals it into v
func DecodeJSONObject(text string, v any) error {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

func truncateContent(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
