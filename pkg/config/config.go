// Package config loads engine configuration from a YAML file with
// environment variable overrides. Secrets (API keys) must only come from
// environment variables and are never written to YAML.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the metadata engine.
type Config struct {
	// Env is the deployment environment name, for log context.
	Env string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`

	// LogLevel controls zap's minimum level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// Provider selects the generation backend: openai, anthropic, gemini.
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`

	OpenAI    OpenAIConfig    `yaml:"openai"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Gemini    GeminiConfig    `yaml:"gemini"`

	AltText  AltTextConfig  `yaml:"alt_text"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// OpenAIConfig holds OpenAI-compatible endpoint settings. Endpoint may
// point at any OpenAI-compatible server.
type OpenAIConfig struct {
	Endpoint    string `yaml:"endpoint" env:"OPENAI_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model       string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o"`
	VisionModel string `yaml:"vision_model" env:"OPENAI_VISION_MODEL" env-default:"gpt-4o"`
	APIKey      string `yaml:"-" env:"OPENAI_API_KEY"` // secret, env only
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	Model  string `yaml:"model" env:"ANTHROPIC_MODEL" env-default:"claude-sonnet-4-5-20250929"`
	APIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"` // secret, env only
}

// GeminiConfig holds Google Gemini settings.
type GeminiConfig struct {
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	APIKey string `yaml:"-" env:"GEMINI_API_KEY"` // secret, env only
}

// AltTextConfig controls the alt-text generation service.
type AltTextConfig struct {
	// RetryEnabled controls the second generation attempt. The
	// deterministic fallback is always on.
	RetryEnabled bool    `yaml:"retry_enabled" env:"ALT_TEXT_RETRY_ENABLED" env-default:"true"`
	Temperature  float32 `yaml:"temperature" env:"ALT_TEXT_TEMPERATURE" env-default:"0.4"`
}

// PipelineConfig controls batch processing behavior.
type PipelineConfig struct {
	MaxConcurrent       int `yaml:"max_concurrent" env:"PIPELINE_MAX_CONCURRENT" env-default:"4"`
	BreakerThreshold    int `yaml:"breaker_threshold" env:"PIPELINE_BREAKER_THRESHOLD" env-default:"5"`
	BreakerResetSeconds int `yaml:"breaker_reset_seconds" env:"PIPELINE_BREAKER_RESET_SECONDS" env-default:"30"`
}

// Load reads configuration from the given YAML path (if it exists) with
// environment variable overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider selection and that the selected provider has an
// API key configured.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when provider is openai")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when provider is anthropic")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when provider is gemini")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	if c.Pipeline.MaxConcurrent < 1 {
		return fmt.Errorf("pipeline max_concurrent must be at least 1")
	}
	return nil
}
