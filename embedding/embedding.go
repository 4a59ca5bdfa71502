// Package embedding wraps the remote embedding capability behind a batched
// client contract with per-item failure reporting.
package embedding

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/oskarkook/ctxrank/types"
)

// Embedder converts one batch of context items into vectors. The returned
// slice has the same length and order as items; an entry whose Vector is
// nil marks an item the capability could not embed. A non-nil error means
// the whole batch failed in transport and no entry is usable.
type Embedder interface {
	Embed(ctx context.Context, items []types.ContextItem) ([]types.Embedding, error)
}

// DefaultModel is used when no embedding model is configured.
const DefaultModel = string(openai.SmallEmbedding3)

// OpenAIClient implements Embedder on the OpenAI embeddings API.
type OpenAIClient struct {
	Client *openai.Client
	Model  openai.EmbeddingModel
}

// NewOpenAIClient creates a client with the provided API key. An empty
// model selects DefaultModel.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		Client: openai.NewClient(apiKey),
		Model:  openai.EmbeddingModel(model),
	}
}

// Embed submits all non-empty items as a single request. Items with empty
// content are never sent and come back absent, matching the capability's
// own behavior for unembeddable input.
func (c *OpenAIClient) Embed(ctx context.Context, items []types.ContextItem) ([]types.Embedding, error) {
	out := make([]types.Embedding, len(items))

	inputs := make([]string, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, item := range items {
		if item.Content == "" {
			continue
		}
		inputs = append(inputs, item.Content)
		positions = append(positions, i)
	}
	if len(inputs) == 0 {
		return out, nil
	}

	resp, err := c.Client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Input: inputs,
			Model: c.Model,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error creating embeddings: %w", err)
	}

	// Response rows map back to items by their request index.
	for _, data := range resp.Data {
		if data.Index < 0 || data.Index >= len(positions) {
			continue
		}
		vector := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vector[j] = float32(v)
		}
		out[positions[data.Index]] = types.Embedding{Vector: vector}
	}

	return out, nil
}
