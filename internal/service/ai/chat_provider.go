package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"

	"github.com/volunteerhub/motivator/backend/internal/config"
)

// ChatProvider talks to an OpenAI-compatible endpoint. Completions run through
// the eino chat model, the reachability check lists models with go-openai.
type ChatProvider struct {
	chatModel model.BaseChatModel
	models    *openai.Client
	name      string
	modelName string
	timeout   time.Duration
}

// NewChatProvider builds both clients for the configured endpoint.
func NewChatProvider(ctx context.Context, cfg config.AIConfig) (*ChatProvider, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &ChatProvider{
		chatModel: chatModel,
		models:    openai.NewClientWithConfig(clientConfig),
		name:      cfg.Provider,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
	}, nil
}

// Name returns the provider's display name.
func (p *ChatProvider) Name() string {
	return p.name
}

// Model returns the default model identifier.
func (p *ChatProvider) Model() string {
	return p.modelName
}

// Complete sends the system/user pair and returns the first choice's content,
// which may be empty.
func (p *ChatProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, params Params) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	modelName := params.Model
	if modelName == "" {
		modelName = p.modelName
	}

	opts := []model.Option{model.WithModel(modelName)}
	if params.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(params.MaxTokens))
	}
	if params.Temperature > 0 {
		opts = append(opts, model.WithTemperature(params.Temperature))
	}
	if params.TopP > 0 {
		opts = append(opts, model.WithTopP(params.TopP))
	}

	msg, err := p.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}, opts...)
	if errors.Is(err, ark.ErrEmptyResponse) {
		return "", ErrNoChoices
	}
	if err != nil {
		return "", &ProviderError{Op: "complete", Err: err}
	}

	finish := ""
	if msg.ResponseMeta != nil {
		finish = msg.ResponseMeta.FinishReason
	}
	log.Printf("[ai] %s completion model=%s length=%d finish=%s", p.name, modelName, len(msg.Content), finish)
	return msg.Content, nil
}

// Ping checks that the endpoint is reachable and accepts the key.
func (p *ChatProvider) Ping(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if _, err := p.models.ListModels(ctx); err != nil {
		return &ProviderError{Op: "list models", Err: err}
	}
	return nil
}

func (p *ChatProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}
