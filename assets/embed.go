// Package assets embeds the prompt and notification templates shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates/prompts/*.tmpl templates/telegram/*.tmpl
var embedded embed.FS

// Template names
const (
	AnalyzeNicheTemplate     = "analyze_niche.tmpl"
	GenerateMetadataTemplate = "generate_metadata.tmpl"
	ResearchSummaryTemplate  = "research_summary.tmpl"
)

// RequiredTemplates lists every template the binary depends on
var RequiredTemplates = []string{
	AnalyzeNicheTemplate,
	GenerateMetadataTemplate,
	ResearchSummaryTemplate,
}

// Templates returns the embedded template tree rooted at templates/
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}
