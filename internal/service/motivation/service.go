package motivation

import (
	"context"
	"errors"
	"log"

	analysis "github.com/volunteerhub/motivator/backend/internal/analysis/motivation"
	model "github.com/volunteerhub/motivator/backend/internal/model/motivation"
	"github.com/volunteerhub/motivator/backend/internal/service/ai"
)

const readyMessage = "AI motivational generator is ready!"

// completionParams keep the reply short and lively.
var completionParams = ai.Params{
	MaxTokens:   80,
	Temperature: 0.9,
	TopP:        0.95,
}

// Config describes the static identity reported by the health check.
type Config struct {
	Provider string
	Model    string
}

// Service turns progress metrics into a short motivational message, falling
// back to canned messages whenever the provider call fails.
type Service struct {
	provider ai.Provider
	prompts  *ai.PromptBuilder
	cfg      Config
}

// NewService creates the motivation service. provider may be nil, in which
// case every request is answered from the fallback table.
func NewService(provider ai.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		prompts:  ai.NewPromptBuilder(),
		cfg:      cfg,
	}
}

// Health reports liveness along with the configured provider and model.
func (s *Service) Health() model.HealthStatus {
	return model.HealthStatus{
		Status:   "healthy",
		Provider: s.cfg.Provider,
		Model:    s.cfg.Model,
		Message:  readyMessage,
	}
}

// GetMotivation never fails; provider errors are logged and replaced by the
// fallback message for the request's points.
func (s *Service) GetMotivation(ctx context.Context, req model.Request) model.Response {
	message, err := s.generate(ctx, req)
	if err != nil {
		log.Printf("[motivation] provider call failed, use fallback: %v", err)
		message = analysis.Fallback(req.Points)
	}
	return model.Response{Message: message}
}

func (s *Service) generate(ctx context.Context, req model.Request) (string, error) {
	if s.provider == nil {
		return "", errors.New("no provider configured")
	}

	prompt, err := s.prompts.Motivation(ctx, req.Points, req.Hours, req.Streak, req.Initiatives)
	if err != nil {
		return "", err
	}

	content, err := s.provider.Complete(ctx, prompt.System, prompt.User, completionParams)
	if errors.Is(err, ai.ErrNoChoices) {
		return analysis.DefaultMessage, nil
	}
	if err != nil {
		return "", err
	}

	return analysis.Polish(content), nil
}
