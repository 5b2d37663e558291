// Package cli implements the ideagen command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/config"
	"idea-eval/backend/internal/idea"
)

// Output formats accepted by --output.
const (
	TextOut = "text"
	JSONOut = "json"
)

// App holds what the commands need from the outside world.
type App struct {
	Version string
	// NewCompleter builds the upstream client. Defaults to ai.NewClient.
	NewCompleter func(ai.Config) (ai.Completer, error)
	// PromptIdea asks for an idea and category interactively. Defaults to a huh form.
	PromptIdea func() (string, string, error)
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	v      *viper.Viper
	cfg    config.Config
	output string
}

// NewApp returns an App wired to the real terminal and providers.
func NewApp(version string) *App {
	return &App{
		Version:      version,
		NewCompleter: ai.NewClient,
		PromptIdea:   promptIdea,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
}

// NewRootCmd creates the top-level "ideagen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	app.v = viper.New()

	root := &cobra.Command{
		Use:           "ideagen",
		Short:         "Generate and validate monetizable AI app ideas.",
		Long:          `ideagen asks a language model for app ideas that can be built in 2-4 weeks, scores them for viability, feasibility and usability, and suggests how to raise weak scores.`,
		Version:       app.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to config file")
	flags.StringP("output", "o", TextOut, "Output format: text or json")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("provider", ai.ProviderOpenAI, "AI provider: openai or anthropic")
	flags.String("model", "", "Model name (provider default when empty)")
	flags.String("api-key", "", "API key (falls back to OPENAI_API_KEY or ANTHROPIC_API_KEY)")
	flags.String("base-url", "", "Override the provider API base URL")
	flags.Duration("timeout", 0, "Upstream request timeout (0 uses 30s)")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")

	bindings := map[string]string{
		"output":      "output",
		"no_color":    "no-color",
		"ai.provider": "provider",
		"ai.model":    "model",
		"ai.api_key":  "api-key",
		"ai.base_url": "base-url",
		"ai.timeout":  "timeout",
		"log_level":   "log-level",
	}
	for key, flag := range bindings {
		_ = app.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newGenerateCmd(app),
		newValidateCmd(app),
		newRecommendCmd(app),
		newCategoriesCmd(app),
		newServeCmd(app),
		newMCPCmd(app),
	)
	return root
}

// setup merges defaults, config file, IDEAGEN_* environment and flags.
func (a *App) setup(cmd *cobra.Command) error {
	v := a.v
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".ideagen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix("IDEAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := config.Defaults()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("disable_ai", false)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("ai.temperature", 0.0)
	v.SetDefault("ai.max_tokens", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.cfg.ConfigureLogging()

	a.output = strings.ToLower(strings.TrimSpace(v.GetString("output")))
	switch a.output {
	case TextOut, JSONOut:
	default:
		return fmt.Errorf("invalid output format %q: use text or json", a.output)
	}
	if v.GetBool("no_color") {
		color.NoColor = true
	}
	return nil
}

// ideaService builds the service; without an API key it is returned disabled
// so that commands can report ai.ErrDisabled themselves.
func (a *App) ideaService() (*idea.Service, error) {
	if a.cfg.DisableAI {
		return idea.NewService(nil), nil
	}
	newCompleter := a.NewCompleter
	if newCompleter == nil {
		newCompleter = ai.NewClient
	}
	completer, err := newCompleter(a.cfg.AI)
	switch {
	case err == nil:
		return idea.NewService(completer), nil
	case errors.Is(err, ai.ErrDisabled):
		logrus.Debug("no API key configured; AI commands are disabled")
		return idea.NewService(nil), nil
	default:
		return nil, fmt.Errorf("ai client: %w", err)
	}
}

func explainAIError(err error) error {
	if errors.Is(err, ai.ErrDisabled) {
		return errors.New("no API key configured: set OPENAI_API_KEY, IDEAGEN_AI_API_KEY or --api-key")
	}
	return err
}

// Execute runs the ideagen command line.
func Execute(version string) error {
	return NewRootCmd(NewApp(version)).Execute()
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
