package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
)

// Provider identifies a generation backend. Selection is a tagged strategy:
// every provider implements the same Client interface and the factory picks
// one by name.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// IsValid returns true for a known provider name.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		return true
	default:
		return false
	}
}

// FactoryConfig carries the per-provider settings; only the selected
// provider's block needs to be populated.
type FactoryConfig struct {
	Provider  Provider
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
}

// Factory creates Clients for the configured provider.
type Factory struct {
	cfg    FactoryConfig
	logger *zap.Logger
}

// NewFactory creates a client factory.
func NewFactory(cfg FactoryConfig, logger *zap.Logger) *Factory {
	return &Factory{cfg: cfg, logger: logger}
}

// Create instantiates a Client for the configured provider. A missing API
// key or model is a construction error, surfaced immediately rather than on
// first use.
func (f *Factory) Create() (Client, error) {
	switch f.cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(f.cfg.OpenAI, f.logger)
	case ProviderAnthropic:
		return NewAnthropicClient(f.cfg.Anthropic, f.logger)
	case ProviderGemini:
		return NewGeminiClient(f.cfg.Gemini, f.logger)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownProvider, f.cfg.Provider)
	}
}
