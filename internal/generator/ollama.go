package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOllamaURL = "http://localhost:11434"

// OllamaGenerator calls the native Ollama generate endpoint.
type OllamaGenerator struct {
	url    string       // e.g. "http://localhost:11434"
	model  string       // e.g. "gemma:2b"
	client *http.Client // reused across calls
}

// Compile-time check: *OllamaGenerator satisfies the Generator interface.
var _ Generator = (*OllamaGenerator)(nil)

// NewOllamaGenerator creates a generator for the given Ollama server.
// The HTTP client has no timeout of its own; callers bound each call
// through the context.
func NewOllamaGenerator(url, model string) *OllamaGenerator {
	if url == "" {
		url = defaultOllamaURL
	}
	return &OllamaGenerator{
		url:    strings.TrimRight(url, "/"),
		model:  model,
		client: &http.Client{},
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// Generate sends a single non-streaming request and returns the raw text.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(ollamaRequest{Model: g.model, Prompt: prompt})
	if err != nil {
		return "", g.fail("failed to marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", g.fail("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", g.fail("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp ollamaResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return "", g.fail(fmt.Sprintf("status %d: %s", resp.StatusCode, errResp.Error), nil)
		}
		return "", g.fail(fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", g.fail("failed to decode response", err)
	}
	if out.Error != "" {
		return "", g.fail(out.Error, nil)
	}

	return checkOutput(ProviderOllama, out.Response)
}

func (g *OllamaGenerator) fail(reason string, err error) error {
	return &GenerationError{Provider: ProviderOllama, Reason: reason, Wrapped: err}
}
