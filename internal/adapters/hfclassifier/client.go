package hfclassifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client calls the HuggingFace Inference API text-classification endpoint.
// The endpoint is treated as unreliable: every call goes through a circuit
// breaker and a bounded request, and the response is normalized into ranked
// predictions regardless of which of the API's two response shapes came back.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiToken   string
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// rawPrediction mirrors one label/score object of the inference API response.
type rawPrediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewClient creates a new inference API classifier client
func NewClient(
	endpoint string,
	apiToken string,
	maxFailures int,
	openTimeout time.Duration,
	logger *zap.Logger,
) *Client {
	if maxFailures <= 0 {
		maxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:    "hf-classifier",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Classifier circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiToken:   apiToken,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// Classify sends the message to the inference API and returns the ranked
// predictions.
func (c *Client) Classify(ctx context.Context, text string) ([]core.Prediction, error) {
	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classifier payload: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, payload)
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.Prediction), nil
}

func (c *Client) doRequest(ctx context.Context, payload []byte) ([]core.Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, body)
	}

	predictions, err := parsePredictions(body)
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// parsePredictions normalizes the inference API response. The API returns
// either a nested list ([[{label,score},...]]) or a flat list depending on
// the model pipeline; both collapse into one ranked prediction slice here,
// before any downstream logic sees the data.
func parsePredictions(body []byte) ([]core.Prediction, error) {
	var nested [][]rawPrediction
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return toPredictions(nested[0]), nil
	}

	var flat []rawPrediction
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return toPredictions(flat), nil
	}

	return nil, fmt.Errorf("unrecognized classifier response: %s", body)
}

func toPredictions(raw []rawPrediction) []core.Prediction {
	predictions := make([]core.Prediction, len(raw))
	for i, r := range raw {
		predictions[i] = core.Prediction{Label: r.Label, Score: r.Score}
	}
	return predictions
}
