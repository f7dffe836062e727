package ai

import (
	"context"
	"errors"
)

var (
	// ErrNoJSON indicates the completion text holds no decodable JSON object
	ErrNoJSON = errors.New("no JSON object found in completion")

	// ErrEmptyResponse indicates the service answered without any choices
	ErrEmptyResponse = errors.New("no choices in response")
)

// CompletionRequest is a single chat completion call
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	// JSONMode asks the service to answer with a bare JSON object
	JSONMode bool
}

// Completer represents a text completion service
type Completer interface {
	// Complete sends the prompt and returns the raw completion text
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// GetName returns provider name
	GetName() string
}
