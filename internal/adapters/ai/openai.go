package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
)

// OpenAIProvider implements Completer for OpenAI and OpenAI-compatible endpoints
type OpenAIProvider struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	jsonMode bool
}

// NewOpenAIProvider creates new OpenAI provider
func NewOpenAIProvider(apiKey string, cfg *config.AIConfig) *OpenAIProvider {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		timeout:  cfg.RequestTimeout,
		jsonMode: cfg.JSONMode,
	}
}

func (o *OpenAIProvider) GetName() string {
	return "openai"
}

// Complete sends one chat completion request. There is no retry.
func (o *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User})

	chatReq := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.JSONMode && o.jsonMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	startTime := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	latency := time.Since(startTime)

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content

	logger.Debug("OpenAI response",
		zap.String("model", o.model),
		zap.Duration("latency", latency),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.String("response", truncateContent(content, 500)),
	)

	return content, nil
}
