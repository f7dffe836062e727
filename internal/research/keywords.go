package research

import "strings"

// ParseKeywords splits a comma-separated list, trims each entry and drops empty ones
func ParseKeywords(raw string) []string {
	keywords := []string{}
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
