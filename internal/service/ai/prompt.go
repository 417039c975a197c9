package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

const motivationSystemPrompt = "You are an enthusiastic, creative motivational coach for volunteers. " +
	"Generate a very short motivational message, maximum 2 sentences. " +
	"Each sentence should be concise, simple, and easy to read (3-8 words). " +
	"Tone depends on progress: " +
	"- Low points/streak: warm encouragement. " +
	"- Medium points/streak: congratulate and motivate. " +
	"- High points/streak: celebrate and inspire. " +
	"Use natural language and emojis sparingly. Make every message punchy and easy to read."

const motivationUserPrompt = "The volunteer has the following achievements:\n" +
	"- Points: {points}\n" +
	"- Volunteer Hours: {hours}\n" +
	"- Initiatives Joined: {initiatives}\n" +
	"- Current Streak: {streak} days\n\n" +
	"Generate a short motivational message (max 2 concise sentences, each 3-8 words)."

const recommendationSystemPrompt = "You are an expert community organizer who returns JSON arrays only."

// Go template syntax keeps the literal braces of the JSON example intact.
const recommendationUserPrompt = `You are an expert community organizer and initiative planner. Based on the following preferences, generate 3 unique initiative ideas.
User's Preferences:
- Cause/Passion: {{.cause}}
- Initiative Scale: {{.scale}}
- Timeline: {{.timeline}}
- Additional Requirements: {{.additional}}
Return ONLY a valid JSON array with exactly 3 objects:
[
  {
    "title": "Initiative Name",
    "description": "Detailed description here...",
    "volunteers": "10-15 needed",
    "timeline": "3-4 weeks planning",
    "impact": "Specific measurable impact"
  }
]`

// Prompt is a rendered system/user pair.
type Prompt struct {
	System string
	User   string
}

// PromptBuilder renders the fixed prompt templates.
type PromptBuilder struct {
	motivation     prompt.ChatTemplate
	recommendation prompt.ChatTemplate
}

// NewPromptBuilder compiles the motivation and recommendation templates.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		motivation: prompt.FromMessages(
			schema.FString,
			schema.SystemMessage(motivationSystemPrompt),
			schema.UserMessage(motivationUserPrompt),
		),
		recommendation: prompt.FromMessages(
			schema.GoTemplate,
			schema.SystemMessage(recommendationSystemPrompt),
			schema.UserMessage(recommendationUserPrompt),
		),
	}
}

// Motivation renders the coach prompt for the four progress metrics.
func (b *PromptBuilder) Motivation(ctx context.Context, points, hours, streak, initiatives int) (Prompt, error) {
	return render(ctx, b.motivation, map[string]any{
		"points":      points,
		"hours":       hours,
		"streak":      streak,
		"initiatives": initiatives,
	})
}

// Recommendation renders the initiative planner prompt.
func (b *PromptBuilder) Recommendation(ctx context.Context, cause, scale, timeline, additional string) (Prompt, error) {
	return render(ctx, b.recommendation, map[string]any{
		"cause":      cause,
		"scale":      scale,
		"timeline":   timeline,
		"additional": additional,
	})
}

func render(ctx context.Context, tpl prompt.ChatTemplate, vars map[string]any) (Prompt, error) {
	messages, err := tpl.Format(ctx, vars)
	if err != nil {
		return Prompt{}, fmt.Errorf("failed to format prompt: %w", err)
	}

	var out Prompt
	for _, msg := range messages {
		switch msg.Role {
		case schema.System:
			out.System = msg.Content
		case schema.User:
			out.User = msg.Content
		}
	}
	return out, nil
}
