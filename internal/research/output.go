package research

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// WriteIdeas writes ideas to path as an indented JSON array
func WriteIdeas(path string, ideas []models.ScoredIdea) error {
	if ideas == nil {
		ideas = []models.ScoredIdea{}
	}
	return writeJSON(path, ideas)
}

// ReadIdeas loads ideas previously written by WriteIdeas
func ReadIdeas(path string) ([]models.ScoredIdea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}

	var ideas []models.ScoredIdea
	if err := json.Unmarshal(data, &ideas); err != nil {
		return nil, fmt.Errorf("failed to parse ideas %s: %w", path, err)
	}
	return ideas, nil
}

// WriteMetadata writes publishing metadata to path as indented JSON
func WriteMetadata(path string, metadata models.Metadata) error {
	return writeJSON(path, metadata)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// MetadataEntry pairs generated metadata with the idea it was written for
type MetadataEntry struct {
	Keyword  string          `json:"keyword"`
	Title    string          `json:"title"`
	Metadata models.Metadata `json:"metadata"`
}

// WriteMetadataBatch writes metadata for several ideas as an indented JSON array
func WriteMetadataBatch(path string, entries []MetadataEntry) error {
	if entries == nil {
		entries = []MetadataEntry{}
	}
	return writeJSON(path, entries)
}
