package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		} else {
			os.Unsetenv(key)
		}
	})
}

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		key := key
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			}
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t, "AI_PROVIDER", "OPENAI_MODEL")
	setEnv(t, "OPENAI_API_KEY", "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.True(t, cfg.AltText.RetryEnabled)
	assert.Equal(t, 4, cfg.Pipeline.MaxConcurrent)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	clearEnv(t, "AI_PROVIDER", "OPENAI_MODEL")
	setEnv(t, "OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider: openai
openai:
  model: gpt-4o-mini
pipeline:
  max_concurrent: 8
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 8, cfg.Pipeline.MaxConcurrent)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey, "secret comes from env, not yaml")
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	clearEnv(t, "AI_PROVIDER", "OPENAI_API_KEY")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_SelectedProviderKeyChecked(t *testing.T) {
	clearEnv(t, "OPENAI_API_KEY", "ANTHROPIC_API_KEY")
	setEnv(t, "AI_PROVIDER", "anthropic")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	setEnv(t, "ANTHROPIC_API_KEY", "sk-ant-test")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider)
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "llama-at-home", Pipeline: PipelineConfig{MaxConcurrent: 4}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_ConcurrencyBound(t *testing.T) {
	cfg := &Config{
		Provider: "openai",
		OpenAI:   OpenAIConfig{APIKey: "sk"},
		Pipeline: PipelineConfig{MaxConcurrent: 0},
	}
	assert.Error(t, cfg.Validate())

	cfg.Pipeline.MaxConcurrent = 2
	assert.NoError(t, cfg.Validate())
}
