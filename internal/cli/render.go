package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"idea-eval/backend/internal/idea"
	"idea-eval/backend/internal/scoring"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	titleColor   = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)

	tierColors = map[scoring.Tier]*color.Color{
		scoring.TierHigh:   color.New(color.FgGreen, color.Bold),
		scoring.TierMedium: color.New(color.FgYellow),
		scoring.TierLow:    color.New(color.FgRed, color.Bold),
	}
)

const progressWidth = 10

// resultOutput is the JSON shape of a generated or validated idea.
type resultOutput struct {
	idea.Validation
	Fallback     bool                          `json:"fallback,omitempty"`
	Model        string                        `json:"model,omitempty"`
	Grades       map[string]scoring.Grade      `json:"grades"`
	Improvements []scoring.RecommendationGroup `json:"improvements"`
}

// recommendationsOutput is the JSON shape of the recommend command.
type recommendationsOutput struct {
	Items  []scoring.RecommendationGroup `json:"items"`
	Grades map[string]scoring.Grade      `json:"grades"`
}

type categoriesOutput struct {
	Generate []string `json:"generate"`
	Validate []string `json:"validate"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func grades(s scoring.ScoredIdea) map[string]scoring.Grade {
	return map[string]scoring.Grade{
		string(scoring.CategoryViability):   scoring.GradeScore(s.Viability),
		string(scoring.CategoryFeasibility): scoring.GradeScore(s.Feasibility),
		string(scoring.CategoryUsability):   scoring.GradeScore(s.Usability),
	}
}

func renderResult(w io.Writer, format string, result idea.Result) error {
	v := result.Validation
	if format == JSONOut {
		return writeJSON(w, resultOutput{
			Validation:   v,
			Fallback:     result.Fallback,
			Model:        result.Model,
			Grades:       grades(v.Scores()),
			Improvements: v.Improvements(),
		})
	}

	if result.Fallback {
		_, _ = warnColor.Fprintln(w, "The model reply could not be read; showing a default assessment.")
	}
	_, _ = headingColor.Fprint(w, "App Idea")
	_, _ = fmt.Fprintf(w, "  [%s]\n%s\n\n", v.Category, v.Idea)

	if err := renderScoreTable(w, v.Scores()); err != nil {
		return err
	}

	field(w, "Target Persona", v.Persona)
	field(w, "Value Proposition", v.ValueProposition)
	field(w, "Monetization", strings.Join(v.Monetization, ", "))
	field(w, "Development Time", v.DevelopmentTime)
	field(w, "Market Size", v.MarketSize)
	field(w, "Tech Stack", strings.Join(v.TechStack, ", "))
	list(w, "Key Features", v.KeyFeatures)
	list(w, "Strengths", v.Strengths)
	list(w, "Challenges", v.Challenges)
	list(w, "Recommendations", v.Recommendations)
	field(w, "Competitor Analysis", v.CompetitorAnalysis)

	_, _ = fmt.Fprintln(w)
	renderGroups(w, v.Improvements())
	if result.Model != "" {
		_, _ = mutedColor.Fprintf(w, "\n%s in %dms\n", result.Model, result.ElapsedMs)
	}
	return nil
}

func renderRecommendations(w io.Writer, format string, scores scoring.ScoredIdea) error {
	groups := scoring.RecommendationsFor(scores)
	if format == JSONOut {
		return writeJSON(w, recommendationsOutput{Items: groups, Grades: grades(scores)})
	}
	if err := renderScoreTable(w, scores); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	renderGroups(w, groups)
	return nil
}

func renderCategories(w io.Writer, format string) error {
	out := categoriesOutput{
		Generate: idea.GenerateCategories(),
		Validate: idea.ValidateCategories(),
	}
	if format == JSONOut {
		return writeJSON(w, out)
	}
	list(w, "Generate categories", out.Generate)
	_, _ = fmt.Fprintln(w)
	list(w, "Validate categories", out.Validate)
	return nil
}

func renderScoreTable(w io.Writer, s scoring.ScoredIdea) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Dimension", "Score", "Grade", "Progress"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	rows := []struct {
		name  string
		score int
	}{
		{"Viability", s.Viability},
		{"Feasibility", s.Feasibility},
		{"Usability", s.Usability},
	}
	var data [][]string
	for _, r := range rows {
		grade := scoring.GradeScore(r.score)
		data = append(data, []string{
			r.name,
			strconv.Itoa(r.score) + "/10",
			tierColors[grade.Tier].Sprint(grade.Label),
			progressBar(scoring.Percent(r.score)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func renderGroups(w io.Writer, groups []scoring.RecommendationGroup) {
	_, _ = headingColor.Fprintln(w, "Recommendations to Improve Your Scores")
	for _, g := range groups {
		_, _ = titleColor.Fprint(w, g.Title)
		if g.Type != scoring.CategoryGeneral {
			_, _ = mutedColor.Fprintf(w, " [%s]", g.Type)
		}
		_, _ = fmt.Fprintln(w)
		for _, s := range g.Suggestions {
			_, _ = fmt.Fprintf(w, "  • %s\n", s)
		}
	}
}

func progressBar(percent int) string {
	filled := percent * progressWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
}

func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	_, _ = titleColor.Fprintf(w, "%s: ", label)
	_, _ = fmt.Fprintln(w, value)
}

func list(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = titleColor.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  • %s\n", item)
	}
}
