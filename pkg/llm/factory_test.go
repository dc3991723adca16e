package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/apperrors"
)

func TestProvider_IsValid(t *testing.T) {
	assert.True(t, ProviderOpenAI.IsValid())
	assert.True(t, ProviderAnthropic.IsValid())
	assert.True(t, ProviderGemini.IsValid())
	assert.False(t, Provider("bard").IsValid())
}

func TestFactory_CreateSelectsProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       FactoryConfig
		wantModel string
	}{
		{
			name: "openai",
			cfg: FactoryConfig{
				Provider: ProviderOpenAI,
				OpenAI:   OpenAIConfig{Model: "gpt-4o", APIKey: "sk-test"},
			},
			wantModel: "gpt-4o",
		},
		{
			name: "anthropic",
			cfg: FactoryConfig{
				Provider:  ProviderAnthropic,
				Anthropic: AnthropicConfig{Model: "claude-sonnet-4-5-20250929", APIKey: "sk-ant"},
			},
			wantModel: "claude-sonnet-4-5-20250929",
		},
		{
			name: "gemini",
			cfg: FactoryConfig{
				Provider: ProviderGemini,
				Gemini:   GeminiConfig{Model: "gemini-2.0-flash", APIKey: "g-key"},
			},
			wantModel: "gemini-2.0-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewFactory(tt.cfg, zap.NewNop()).Create()
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, client.Model())
		})
	}
}

func TestFactory_CreateRejectsMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  FactoryConfig
	}{
		{
			name: "openai",
			cfg: FactoryConfig{
				Provider: ProviderOpenAI,
				OpenAI:   OpenAIConfig{Model: "gpt-4o"},
			},
		},
		{
			name: "anthropic",
			cfg: FactoryConfig{
				Provider:  ProviderAnthropic,
				Anthropic: AnthropicConfig{Model: "claude-sonnet-4-5-20250929"},
			},
		},
		{
			name: "gemini",
			cfg: FactoryConfig{
				Provider: ProviderGemini,
				Gemini:   GeminiConfig{Model: "gemini-2.0-flash"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFactory(tt.cfg, zap.NewNop()).Create()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
		})
	}
}

func TestFactory_CreateUnknownProvider(t *testing.T) {
	_, err := NewFactory(FactoryConfig{Provider: "bard"}, zap.NewNop()).Create()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownProvider))
	assert.Contains(t, err.Error(), "bard")
}
