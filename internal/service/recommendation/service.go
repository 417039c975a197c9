package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "github.com/volunteerhub/motivator/backend/internal/model/recommendation"
	"github.com/volunteerhub/motivator/backend/internal/service/ai"
)

var (
	ErrInvalidAnswers      = errors.New("invalid answers")
	ErrProviderUnreachable = errors.New("cannot reach AI provider")
	ErrGenerationFailed    = errors.New("failed to generate recommendations")
	ErrInvalidFormat       = errors.New("failed to parse AI response")
)

const maxRecommendations = 3

const noAdditional = "None specified"

var codeFence = regexp.MustCompile("```json\\n?|```\\n?")

// Service generates initiative ideas from volunteer preferences.
type Service struct {
	provider  ai.Provider
	prompts   *ai.PromptBuilder
	validate  *validator.Validate
	modelName string
}

// NewService creates the recommendation service. modelName overrides the
// provider's default model when non-empty.
func NewService(provider ai.Provider, modelName string) *Service {
	return &Service{
		provider:  provider,
		prompts:   ai.NewPromptBuilder(),
		validate:  validator.New(),
		modelName: modelName,
	}
}

// Generate validates the answers, checks the provider is reachable and asks it
// for up to three initiative ideas.
func (s *Service) Generate(ctx context.Context, req model.Request) ([]model.Recommendation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	answers := req.Answers

	if err := s.provider.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}

	additional := strings.TrimSpace(answers.Additional)
	if additional == "" {
		additional = noAdditional
	}

	prompt, err := s.prompts.Recommendation(ctx, answers.Cause, answers.Scale, answers.Timeline, additional)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	content, err := s.provider.Complete(ctx, prompt.System, prompt.User, ai.Params{
		Model:       s.modelName,
		MaxTokens:   2500,
		Temperature: 0.8,
		TopP:        0.9,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	recs, err := parseRecommendations(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	log.Printf("[recommendation] generated %d ideas for cause=%q", len(recs), answers.Cause)
	return recs, nil
}

type rawRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Volunteers  string `json:"volunteers"`
	Timeline    string `json:"timeline"`
	Impact      string `json:"impact"`
}

// parseRecommendations decodes the model's JSON array and fills missing fields.
func parseRecommendations(content string) ([]model.Recommendation, error) {
	cleaned := strings.TrimSpace(codeFence.ReplaceAllString(content, ""))

	var raw []rawRecommendation
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("invalid recommendations format")
	}
	if len(raw) > maxRecommendations {
		raw = raw[:maxRecommendations]
	}

	recs := make([]model.Recommendation, 0, len(raw))
	for _, item := range raw {
		recs = append(recs, model.Recommendation{
			ID:          uuid.NewString(),
			Title:       orDefault(item.Title, "Unnamed Initiative"),
			Description: orDefault(item.Description, "No description provided"),
			Volunteers:  orDefault(item.Volunteers, "10-15 needed"),
			Timeline:    orDefault(item.Timeline, "4-6 weeks planning"),
			Impact:      orDefault(item.Impact, "Positive community impact"),
		})
	}
	return recs, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
