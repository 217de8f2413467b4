package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS" envDefault:":8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Text generation. LLMProvider is one of "ollama", "openai" or "anthropic";
	// an empty LLMURL selects the provider's default endpoint.
	LLMProvider       string        `env:"LLM_PROVIDER" envDefault:"ollama"`
	LLMURL            string        `env:"LLM_URL"`
	LLMModel          string        `env:"LLM_MODEL" envDefault:"gemma:2b"`
	LLMAPIKey         string        `env:"LLM_API_KEY"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`

	// Interview
	RoundLimit int `env:"ROUND_LIMIT" envDefault:"5"`

	// Session store
	StoreDriver   string `env:"STORE_DRIVER" envDefault:"memory"` // "memory" or "sqlite"
	SQLiteDSN     string `env:"SQLITE_DSN" envDefault:"file::memory:?cache=shared"`
	StatsSchedule string `env:"STATS_SCHEDULE" envDefault:"@every 1m"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RoundLimit < 1 {
		return fmt.Errorf("config: ROUND_LIMIT must be at least 1, got %d", c.RoundLimit)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("config: GENERATION_TIMEOUT must be positive, got %s", c.GenerationTimeout)
	}
	switch c.StoreDriver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
