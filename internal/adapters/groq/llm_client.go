package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// GroqClient is an implementation of the TextGenerator interface using the
// Groq chat completions API. Groq speaks the OpenAI wire protocol, so the
// OpenAI client with a custom base URL does the transport work.
type GroqClient struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	logger      *zap.Logger
}

// NewGroqClient creates a new Groq client
func NewGroqClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) *GroqClient {
	return &GroqClient{
		client:      client,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		logger:      logger,
	}
}

// Generate returns the model's completion for the prompt
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with Groq: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from Groq")
	}

	return resp.Choices[0].Message.Content, nil
}
