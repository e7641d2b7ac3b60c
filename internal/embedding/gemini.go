package embedding

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiEmbedModels maps friendly names to Gemini embedding model IDs.
var geminiEmbedModels = map[string]string{
	"default": "text-embedding-004",
}

// GeminiEmbedder implements Embedder using the Google Gemini SDK.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
	dim    int
}

// NewGeminiEmbedder creates a Gemini-backed embedder producing vectors of
// length cfg.Dimension.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiConfig) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Dimension <= 0 {
		return nil, &ErrInvalidDimension{Dim: cfg.Dimension}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.Model
	if id, ok := geminiEmbedModels[model]; ok {
		model = id
	}

	return &GeminiEmbedder{
		client: client,
		model:  model,
		dim:    cfg.Dimension,
	}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ErrEmptyText{}
	}

	dim := int32(e.dim)
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}},
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dim,
	})
	if err != nil {
		return nil, &ErrEmbeddingUnavailable{Err: err}
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, &ErrEmbeddingUnavailable{Err: fmt.Errorf("empty embedding in Gemini response")}
	}

	return resp.Embeddings[0].Values, nil
}

func (e *GeminiEmbedder) Dimension() int { return e.dim }

func (e *GeminiEmbedder) ModelID() string { return e.model }
