package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"idea-eval/backend/internal/ai"
)

// Config holds the settings shared by the HTTP server and the CLI.
type Config struct {
	Port           string    `env:"PORT" mapstructure:"port"`
	AllowedOrigins []string  `env:"ALLOWED_ORIGINS" envSeparator:"," mapstructure:"allowed_origins"`
	DisableAI      bool      `env:"DISABLE_AI" mapstructure:"disable_ai"`
	LogLevel       string    `env:"LOG_LEVEL" mapstructure:"log_level"`
	LogFormat      string    `env:"LOG_FORMAT" mapstructure:"log_format"`
	AI             ai.Config `mapstructure:"ai"`
}

// Defaults returns the baseline configuration before env or file overrides.
func Defaults() Config {
	return Config{
		Port:      "2000",
		LogLevel:  "info",
		LogFormat: "text",
		AI: ai.Config{
			Provider: ai.ProviderOpenAI,
		},
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.resolveAPIKey(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromViper resolves configuration from an already-populated viper instance
// (flags, IDEAGEN_* environment, config file).
func FromViper(v *viper.Viper) (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	cfg.resolveAPIKey(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolveAPIKey falls back to the provider's conventional key variable.
func (c *Config) resolveAPIKey(lookup func(string) (string, bool)) {
	if strings.TrimSpace(c.AI.APIKey) != "" {
		return
	}
	name := "OPENAI_API_KEY"
	if strings.EqualFold(strings.TrimSpace(c.AI.Provider), ai.ProviderAnthropic) {
		name = "ANTHROPIC_API_KEY"
	}
	if value, ok := lookup(name); ok {
		c.AI.APIKey = strings.TrimSpace(value)
	}
}

// Validate checks values that would otherwise fail late at startup.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	switch strings.ToLower(strings.TrimSpace(c.AI.Provider)) {
	case "", ai.ProviderOpenAI, ai.ProviderAnthropic:
	default:
		return fmt.Errorf("unknown ai provider %q", c.AI.Provider)
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("ai temperature %.2f out of range", c.AI.Temperature)
	}
	return nil
}

// ConfigureLogging applies the level and formatter to the standard logrus logger.
func (c Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
