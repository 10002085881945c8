// Package embedding provides the OpenAI embedding adapter.
// Clean Architecture: This is an adapter that implements ports.EmbeddingService.
// It knows about the OpenAI API but the domain layer doesn't.
package embedding

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

const defaultModel = "text-embedding-3-small"

// OpenAIAdapter implements ports.EmbeddingService using the OpenAI
// embeddings API.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI embedding adapter. baseURL may
// point at any OpenAI-compatible endpoint.
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

// Embed generates an embedding for a single text.
func (a *OpenAIAdapter) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := a.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: a.model,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: param.Opt[string]{Value: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("calling embeddings API: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embeddings API returned no data")
	}
	return resp.Data[0].Embedding, nil
}

// EmbedBatch generates embeddings for multiple texts in one request,
// one vector per input, same order.
func (a *OpenAIAdapter) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := a.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: a.model,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("calling embeddings API: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings API returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}
	embeddings := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		embeddings[i] = d.Embedding
	}
	return embeddings, nil
}
