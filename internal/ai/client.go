package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Completer sends a single prompt to an upstream language model and returns the
// raw text of its reply.
type Completer interface {
	Enabled() bool
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is one system+user prompt exchange.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Config holds upstream model configuration parameters.
type Config struct {
	Provider    string        `env:"AI_PROVIDER" mapstructure:"provider"`
	APIKey      string        `env:"AI_API_KEY" mapstructure:"api_key"`
	Model       string        `env:"AI_MODEL" mapstructure:"model"`
	BaseURL     string        `env:"AI_BASE_URL" mapstructure:"base_url"`
	Temperature float64       `env:"AI_TEMPERATURE" mapstructure:"temperature"`
	MaxTokens   int           `env:"AI_MAX_TOKENS" mapstructure:"max_tokens"`
	Timeout     time.Duration `env:"AI_TIMEOUT" mapstructure:"timeout"`
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	defaultOpenAIModel    = "gpt-3.5-turbo"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
	defaultTemperature    = 0.7
	defaultMaxTokens      = 1000
	defaultTimeout        = 30 * time.Second
)

var (
	ErrDisabled      = errors.New("ai client disabled")
	ErrEmptyResponse = errors.New("ai empty response")
)

// NewClient constructs the Completer for the configured provider. It returns
// ErrDisabled when no API key is available.
func NewClient(cfg Config) (Completer, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	switch cfg.Provider {
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return newOpenAIClient(cfg), nil
	}
}

// Normalized returns the configuration with defaults applied, as NewClient sees it.
func (cfg Config) Normalized() Config {
	out, _ := cfg.withDefaults()
	return out
}

func (cfg Config) withDefaults() (Config, error) {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = defaultOpenAIModel
		}
	case ProviderAnthropic:
		if cfg.Model == "" {
			cfg.Model = defaultAnthropicModel
		}
	default:
		return cfg, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}

	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}

// settings resolves per-request sampling values against the client defaults.
func (cfg Config) settings(req Request) (float64, int) {
	temp := cfg.Temperature
	if req.Temperature > 0 {
		temp = req.Temperature
	}
	maxTokens := cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	return temp, maxTokens
}

// ExtractJSON pulls the outermost JSON object out of a model reply, dropping
// Markdown code fences and any prose around it.
func ExtractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.IndexRune(trimmed, '\n'); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
		trimmed = strings.TrimSpace(trimmed)
		trimmed = strings.TrimSuffix(trimmed, "```")
	}
	trimmed = strings.TrimSpace(trimmed)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end >= start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}
