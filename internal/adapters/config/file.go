package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// AppDirName is the per-user settings directory under $HOME
const AppDirName = ".kdp-autostudio"

// FileConfig mirrors the desktop application's config.json
type FileConfig struct {
	OpenAIAPIKey   string                 `json:"openAIApiKey"`
	OpenAIModel    string                 `json:"openAIModel"`
	ScoringWeights *models.ScoringWeights `json:"scoringWeights"`
}

// DefaultFilePath returns ~/.kdp-autostudio/config.json
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, AppDirName, "config.json"), nil
}

// LoadFile reads the JSON config file. A missing file is not an error and yields nil.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("config file not found", zap.String("path", path))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file FileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	logger.Debug("config file loaded",
		zap.String("path", path),
		zap.Bool("has_api_key", file.OpenAIAPIKey != ""),
		zap.Bool("has_weights", file.ScoringWeights != nil),
	)

	return &file, nil
}
