package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-interviewer/backend/internal/infrastructure/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, "gemma:2b", cfg.LLMModel)
	assert.Equal(t, 120*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 5, cfg.RoundLimit)
	assert.Equal(t, "memory", cfg.StoreDriver)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "qwen3-8b")
	t.Setenv("ROUND_LIMIT", "3")
	t.Setenv("GENERATION_TIMEOUT", "30s")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "qwen3-8b", cfg.LLMModel)
	assert.Equal(t, 3, cfg.RoundLimit)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key, value string
	}{
		"zero rounds":    {"ROUND_LIMIT", "0"},
		"bad duration":   {"SHUTDOWN_TIMEOUT", "soon"},
		"unknown driver": {"STORE_DRIVER", "redis"},
		"no timeout":     {"GENERATION_TIMEOUT", "0s"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Parse()
			assert.Error(t, err)
		})
	}
}
