package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"idea-eval/backend/internal/idea"
)

// promptIdea shows the validate form on the terminal.
func promptIdea() (string, string, error) {
	var (
		text     string
		category = idea.GeneralCategory
	)
	options := append([]string{idea.GeneralCategory}, idea.ValidateCategories()...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Your App Idea").
				Placeholder("Describe your app idea in detail...").
				Value(&text).
				Validate(requireIdea),
			huh.NewSelect[string]().
				Title("App Category").
				Options(huh.NewOptions(options...)...).
				Value(&category),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(text), category, nil
}

func requireIdea(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter an app idea first")
	}
	return nil
}
