package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "KDP"

// ErrMissingAPIKey indicates no completion-service credential could be found
var ErrMissingAPIKey = errors.New("OpenAI API key is required (use --api-key, OPENAI_API_KEY or openAIApiKey in the config file)")

// Config represents application configuration
type Config struct {
	AI       AIConfig       `envconfig:"AI"`
	Scraper  ScraperConfig  `envconfig:"SCRAPER"`
	Telegram TelegramConfig `envconfig:"TELEGRAM"`
	Logging  LoggingConfig  `envconfig:"LOGGING"`

	// ConfigFile overrides the default ~/.kdp-autostudio/config.json location
	ConfigFile string `envconfig:"CONFIG_FILE"`

	// Scoring is filled from the config file, not the environment
	Scoring models.ScoringWeights `ignored:"true"`
}

// AIConfig represents completion service configuration
type AIConfig struct {
	APIKey              string        `envconfig:"OPENAI_API_KEY"`
	Model               string        `envconfig:"OPENAI_MODEL" default:"gpt-4-turbo-preview"`
	BaseURL             string        `envconfig:"OPENAI_BASE_URL"`
	AnalysisTemperature float32       `envconfig:"ANALYSIS_TEMPERATURE" default:"0.7"`
	MetadataTemperature float32       `envconfig:"METADATA_TEMPERATURE" default:"0.8"`
	RequestTimeout      time.Duration `envconfig:"REQUEST_TIMEOUT" default:"0s"`
	JSONMode            bool          `envconfig:"JSON_MODE" default:"true"`
}

// ScraperConfig represents listing collector configuration
type ScraperConfig struct {
	BaseURL     string        `envconfig:"MARKETPLACE_URL" default:"https://www.amazon.com"`
	MaxResults  int           `envconfig:"MAX_RESULTS" default:"20"`
	SettleDelay time.Duration `envconfig:"SETTLE_DELAY" default:"2s"`
	IdleWait    time.Duration `envconfig:"IDLE_WAIT" default:"500ms"`
	Headless    bool          `envconfig:"HEADLESS" default:"true"`
	BrowserBin  string        `envconfig:"BROWSER_BIN"`
}

// TelegramConfig represents optional research notifications
type TelegramConfig struct {
	BotToken string `envconfig:"BOT_TOKEN"`
	ChatID   int64  `envconfig:"CHAT_ID"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE"`
}

// Load reads configuration from .env, environment variables and the JSON config file
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// an empty KDP_AI_OPENAI_API_KEY hides the OPENAI_API_KEY alt name from envconfig
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	cfg.Scoring = models.DefaultScoringWeights()

	path := cfg.ConfigFile
	if path == "" {
		var err error
		if path, err = DefaultFilePath(); err != nil {
			return nil, err
		}
	}

	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyFile(file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyFile merges values from the JSON config file; environment values win
func (c *Config) applyFile(file *FileConfig) {
	if file == nil {
		return
	}
	if c.AI.APIKey == "" {
		c.AI.APIKey = strings.TrimSpace(file.OpenAIAPIKey)
	}
	if file.OpenAIModel != "" && !envSet(EnvPrefix+"_AI_OPENAI_MODEL", "OPENAI_MODEL") {
		c.AI.Model = file.OpenAIModel
	}
	if file.ScoringWeights != nil {
		c.Scoring = *file.ScoringWeights
	}
}

func envSet(keys ...string) bool {
	for _, key := range keys {
		if _, ok := os.LookupEnv(key); ok {
			return true
		}
	}
	return false
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.AI.Model == "" {
		return fmt.Errorf("ai model must be set")
	}
	if c.AI.AnalysisTemperature < 0 || c.AI.AnalysisTemperature > 2 {
		return fmt.Errorf("analysis temperature must be between 0 and 2")
	}
	if c.AI.MetadataTemperature < 0 || c.AI.MetadataTemperature > 2 {
		return fmt.Errorf("metadata temperature must be between 0 and 2")
	}
	if c.AI.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}

	if !strings.HasPrefix(c.Scraper.BaseURL, "http://") && !strings.HasPrefix(c.Scraper.BaseURL, "https://") {
		return fmt.Errorf("scraper base url must be http(s), got %q", c.Scraper.BaseURL)
	}
	if c.Scraper.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1")
	}
	if c.Scraper.SettleDelay < 0 || c.Scraper.IdleWait < 0 {
		return fmt.Errorf("scraper delays must not be negative")
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring weights: %w", err)
	}

	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == 0) {
		return fmt.Errorf("telegram bot token and chat id must be set together")
	}

	return nil
}

// ResolveAPIKey returns the flag value when given, otherwise the configured key
func (c *Config) ResolveAPIKey(flagValue string) (string, error) {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key, nil
	}
	if c.AI.APIKey != "" {
		return c.AI.APIKey, nil
	}
	return "", ErrMissingAPIKey
}

// TelegramEnabled reports whether research notifications should be sent
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != 0
}
