package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-eval/backend/internal/ai"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://ideas.example.com")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_MODEL", "claude-test")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://ideas.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "claude-test", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "sk-ant", cfg.AI.APIKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "AI_PROVIDER", "AI_API_KEY", "AI_MODEL", "LOG_LEVEL", "LOG_FORMAT", "DISABLE_AI", "AI_TIMEOUT", "AI_TEMPERATURE", "AI_MAX_TOKENS", "AI_BASE_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2000", cfg.Port)
	assert.Equal(t, ai.ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "sk-openai", cfg.AI.APIKey)
	assert.False(t, cfg.DisableAI)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad provider", func(c *Config) { c.AI.Provider = "gemini" }},
		{"bad temperature", func(c *Config) { c.AI.Temperature = 3 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Defaults().Validate())
}

func TestFromViper(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")

	v := viper.New()
	v.Set("port", "9000")
	v.Set("ai.model", "gpt-4o-mini")
	v.Set("ai.api_key", "sk-flag")
	v.Set("ai.timeout", "12s")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, "sk-flag", cfg.AI.APIKey)
	assert.Equal(t, 12*time.Second, cfg.AI.Timeout)
	assert.Equal(t, ai.ProviderOpenAI, cfg.AI.Provider)
}
