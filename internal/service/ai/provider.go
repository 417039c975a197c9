package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoChoices is returned when the provider answered successfully but without
// any completion choice.
var ErrNoChoices = errors.New("completion returned no choices")

// Params tunes a single completion call. An empty Model uses the provider default.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Provider is the narrow capability the services need from a chat-completion API.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, params Params) (string, error)
	Ping(ctx context.Context) error
	Name() string
	Model() string
}

// ProviderError wraps any failure talking to the upstream API.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
