package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"idea-eval/backend/internal/idea"
	"idea-eval/backend/internal/mcp"
	"idea-eval/backend/internal/scoring"
)

func newGenerateCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ask the model for a new app idea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.ideaService()
			if err != nil {
				return err
			}
			if category != "" && !idea.IsKnownCategory(category) {
				return fmt.Errorf("unknown category %q: run 'ideagen categories' to list them", category)
			}
			result, err := svc.Generate(cmd.Context(), category)
			if err != nil {
				return fmt.Errorf("failed to generate idea: %w", explainAIError(err))
			}
			return renderResult(out(cmd), app.output, result)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "App category (empty lets the model choose)")
	return cmd
}

func newValidateCmd(app *App) *cobra.Command {
	var (
		ideaText    string
		category    string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "validate [idea]",
		Short: "Score an app idea and suggest improvements",
		Long:  `Score an app idea for viability, feasibility and usability. Without an idea on the command line, an interactive form is shown when stdin is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ideaText == "" && len(args) > 0 {
				ideaText = strings.Join(args, " ")
			}
			if interactive || (strings.TrimSpace(ideaText) == "" && app.IsInteractive != nil && app.IsInteractive()) {
				if app.PromptIdea == nil {
					return errors.New("interactive prompt unavailable")
				}
				text, cat, err := app.PromptIdea()
				if err != nil {
					return fmt.Errorf("prompt: %w", err)
				}
				ideaText, category = text, cat
			}

			svc, err := app.ideaService()
			if err != nil {
				return err
			}
			result, err := svc.Validate(cmd.Context(), ideaText, category)
			if err != nil {
				if errors.Is(err, idea.ErrIdeaRequired) {
					return errors.New("please enter an app idea first")
				}
				return fmt.Errorf("failed to validate idea: %w", explainAIError(err))
			}
			return renderResult(out(cmd), app.output, result)
		},
	}
	cmd.Flags().StringVarP(&ideaText, "idea", "i", "", "Description of the app idea")
	cmd.Flags().StringVarP(&category, "category", "c", "", "App category (defaults to General)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for the idea and category")
	return cmd
}

func newRecommendCmd(app *App) *cobra.Command {
	var scores scoring.ScoredIdea
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List improvement suggestions for a set of scores",
		Long:  `Run the recommendation rules against viability, feasibility and usability scores without calling a model.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderRecommendations(out(cmd), app.output, scores)
		},
	}
	cmd.Flags().IntVar(&scores.Viability, "viability", 0, "Market viability score (0-10)")
	cmd.Flags().IntVar(&scores.Feasibility, "feasibility", 0, "Technical feasibility score (0-10)")
	cmd.Flags().IntVar(&scores.Usability, "usability", 0, "Usability score (0-10)")
	_ = cmd.MarkFlagRequired("viability")
	_ = cmd.MarkFlagRequired("feasibility")
	_ = cmd.MarkFlagRequired("usability")
	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the app categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderCategories(out(cmd), app.output)
		},
	}
}

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the ideagen MCP server",
		Long:  `Launch an MCP server on stdio that exposes generate_idea, validate_idea and recommend as tools.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.ideaService()
			if err != nil {
				return err
			}
			return mcp.StartMCPServer(cmd.Context(), svc, app.Version)
		},
	}
}
