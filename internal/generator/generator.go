package generator

import (
	"context"
	"fmt"
	"strings"
)

// Generator turns a fully rendered prompt into model output.
// Implementations make a single attempt per call and report every failure
// (unreachable backend, bad status, malformed or empty output) as a
// *GenerationError.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config selects and configures a provider.
type Config struct {
	Provider string
	URL      string // empty = provider default
	Model    string
	APIKey   string
}

// New builds the Generator named by cfg.Provider.
func New(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOllama:
		return NewOllamaGenerator(cfg.URL, cfg.Model), nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(cfg.URL, cfg.Model, cfg.APIKey), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(cfg.URL, cfg.Model, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}

// GenerationError is returned when a generation call fails so callers can
// tell "the model was unreachable or answered garbage" apart from their own
// errors.
type GenerationError struct {
	Provider string
	Reason   string
	Wrapped  error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed (%s): %s: %v", e.Provider, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed (%s): %s", e.Provider, e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}

// checkOutput rejects blank model output.
func checkOutput(provider, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Provider: provider, Reason: "model returned empty content"}
	}
	return text, nil
}
