package openaiad

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"trip_planner/internal/adapters/observability"
)

// Client is the alternative TextGenerator, selected when the service
// is configured with AI_PROVIDER=openai.
type Client struct {
	cl    *openai.Client
	model string
}

func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{cl: openai.NewClient(apiKey), model: model}, nil
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.cl.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		observability.ObserveExternal("openai", "chatCompletion", 500, time.Since(start))
		return "", fmt.Errorf("chat completion: %w", err)
	}
	observability.ObserveExternal("openai", "chatCompletion", 200, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
