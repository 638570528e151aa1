package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// HuggingFaceProvider embeds text through the HuggingFace Inference API
// feature-extraction pipeline.
type HuggingFaceProvider struct {
	httpClient *http.Client
	endpoint   string
	apiToken   string
	dimension  int
	logger     *zap.Logger
}

// NewHuggingFaceProvider creates a new inference API embedding provider
func NewHuggingFaceProvider(endpoint, apiToken string, dimension int, logger *zap.Logger) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiToken:   apiToken,
		dimension:  dimension,
		logger:     logger,
	}
}

// Dimension returns the expected vector dimension
func (p *HuggingFaceProvider) Dimension() int {
	return p.dimension
}

// Embed returns the embedding vector for a single text
func (p *HuggingFaceProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns embedding vectors for several texts at once
func (p *HuggingFaceProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	payload, err := json.Marshal(map[string]interface{}{"inputs": texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding service returned status %d: %s", resp.StatusCode, body)
	}

	var vectors [][]float32
	if err := json.Unmarshal(body, &vectors); err != nil {
		return nil, fmt.Errorf("failed to parse embedding response: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(vectors), len(texts))
	}
	for i, vec := range vectors {
		if len(vec) != p.dimension {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(vec), p.dimension)
		}
	}

	return vectors, nil
}
