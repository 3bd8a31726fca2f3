package ai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/budai-platform/agent-summarizer/pkg/config"
)

// samplingTemperature is fixed for summarization; structured extraction
// wants low-variance output.
const samplingTemperature = 0.3

// chatCompleter abstracts the OpenAI client for testing
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient is a minimal client for OpenAI chat completion calls used for
// meeting summarization
type OpenAIClient struct {
	apiKey string
	client chatCompleter
}

// NewOpenAIClient creates an OpenAI client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIClient{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// Configured reports whether an API key is available. An unconfigured client
// marks the service not-ready; no call is attempted in that state.
func (c *OpenAIClient) Configured() bool {
	return c.apiKey != ""
}

// Complete sends a single non-streaming chat completion request and returns
// the assistant content. JSON-object mode is requested so the model emits a
// machine-parseable response. No retries: any failure surfaces to the caller.
func (c *OpenAIClient) Complete(ctx context.Context, systemInstruction, userPrompt, model string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: samplingTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from provider")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("provider returned empty content")
	}
	return content, nil
}
