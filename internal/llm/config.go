// Package llm provides centralized LLM configuration and client abstractions.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config using a specific model name
func (c *Config) WithModel(model string) *Config {
	if model == "" {
		return c
	}
	return &Config{Provider: c.Provider, Model: model}
}

// GenerationParams bound the cost and latency of a single generation
// call. They do not change correctness; malformed output is caught by
// the validator regardless.
type GenerationParams struct {
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultGenerationParams returns the parameters used for risk
// assessments: moderate randomness, bounded output length.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature:     0.7,
		MaxOutputTokens: 1000,
	}
}
