package embedding

import (
	"fmt"
	"os"

	"github.com/abhisek/examforge/internal/llm"
)

// DefaultDimension is the index vector length used unless overridden.
// All backends are configured to emit vectors of this length so the hash
// fallback stays dimensionally compatible with the real providers.
const DefaultDimension = 768

// Config holds embedding backend configuration.
type Config struct {
	// Backend selects the embedder.
	// Values: "openai", "gemini", "hash"
	Backend string

	// Dimension is the vector length every backend must produce.
	Dimension int

	OpenAI OpenAIConfig
	Gemini GeminiConfig

	// Retry configures backoff for transient backend failures.
	Retry llm.RetryConfig
}

// OpenAIConfig holds OpenAI embedding configuration.
type OpenAIConfig struct {
	APIKey    string
	Model     string // Default: "small" (text-embedding-3-small)
	BaseURL   string // Optional override for compatible APIs.
	Dimension int
}

// GeminiConfig holds Gemini embedding configuration.
type GeminiConfig struct {
	APIKey    string
	Model     string // Default: "default" (text-embedding-004)
	Dimension int
}

// DefaultConfig returns a Config with the hash backend, so the engine works
// without external access until a real backend is configured.
func DefaultConfig() Config {
	return Config{
		Backend:   "hash",
		Dimension: DefaultDimension,
		OpenAI:    OpenAIConfig{Model: "small"},
		Gemini:    GeminiConfig{Model: "default"},
		Retry:     llm.DefaultConfig().Retry,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if b := os.Getenv("EXAMFORGE_EMBED_BACKEND"); b != "" {
		cfg.Backend = b
	}
	if k := os.Getenv("EXAMFORGE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("EXAMFORGE_OPENAI_EMBED_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if k := os.Getenv("EXAMFORGE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("EXAMFORGE_GEMINI_EMBED_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// Validate checks that the selected backend has its required key set.
func (c Config) Validate() error {
	if c.Dimension <= 0 {
		return &ErrInvalidDimension{Dim: c.Dimension}
	}
	switch c.Backend {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("EXAMFORGE_OPENAI_API_KEY is required for the openai embedding backend")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("EXAMFORGE_GEMINI_API_KEY is required for the gemini embedding backend")
		}
	case "hash":
		// Always available.
	default:
		return fmt.Errorf("unknown embedding backend: %q", c.Backend)
	}
	return nil
}
