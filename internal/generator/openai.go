package generator

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator talks to any OpenAI-compatible chat completions endpoint
// (OpenAI, Ollama's /v1, LM Studio, vLLM).
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

var _ Generator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(baseURL, model, apiKey string) *OpenAIGenerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &GenerationError{Provider: ProviderOpenAI, Reason: "chat completion failed", Wrapped: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: ProviderOpenAI, Reason: "model returned no choices"}
	}
	return checkOutput(ProviderOpenAI, resp.Choices[0].Message.Content)
}
