package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"code_mentor/internal/common"

	openai "github.com/sashabaranov/go-openai"
)

// emptyObject is returned whenever the provider yields nothing usable, so
// downstream normalization sees valid-but-empty JSON instead of an error.
const emptyObject = "{}"

// Provider sends a rendered prompt to a chat-completion endpoint and
// returns the first choice's raw text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

type OpenAIOptions struct {
	APIKey      string
	BaseURL     string // optional override, used by tests and proxies
	Model       string
	Temperature float64
	MaxTokens   int
}

func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		if isRateLimited(err) {
			return "", fmt.Errorf("completion provider rate limited: %w", common.ErrRateLimited)
		}
		return "", fmt.Errorf("completion request failed: %v: %w", err, common.ErrServiceUnavailable)
	}

	if len(resp.Choices) == 0 {
		return emptyObject, nil
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return emptyObject, nil
	}
	return content, nil
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	return false
}
