// Package llm provides the OpenAI chat completion adapter.
// Clean Architecture: Adapter implementing ports.CompletionService.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

const defaultModel = "gpt-4.1-mini"

// OpenAIAdapter implements ports.CompletionService using the OpenAI chat
// completions API.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI chat adapter. baseURL may point at
// any OpenAI-compatible endpoint.
func NewOpenAIAdapter(apiKey, baseURL, model string) *OpenAIAdapter {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIAdapter{
		client: &client,
		model:  model,
	}
}

// Complete sends the ordered role-tagged messages and extracts the single
// resulting message text.
func (a *OpenAIAdapter) Complete(ctx context.Context, messages []entities.ChatMessage, temperature float64) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       a.model,
		Messages:    toParams(messages),
		Temperature: param.Opt[float64]{Value: temperature},
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("calling chat completions API: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completions API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// toParams maps domain messages onto the OpenAI union type. Unknown roles
// are treated as user turns.
func toParams(messages []entities.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
