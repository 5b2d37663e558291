package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/idea"
	"idea-eval/backend/internal/scoring"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	tabGenerate = "generate"
	tabValidate = "validate"

	alertIdeaRequired  = "Please enter an app idea first."
	alertGenerateError = "Sorry, there was an error generating the idea. Please try again."
	alertValidateError = "Sorry, there was an error validating your idea. Please try again."
	alertAIDisabled    = "The AI provider is not configured on this server."
)

// PageData is the model rendered by index.tmpl.
type PageData struct {
	ActiveTab          string
	GenerateCategories []string
	ValidateCategories []string
	SelectedCategory   string
	UserIdea           string
	Alert              string
	Result             *ResultView
}

// ResultView is a validation prepared for display.
type ResultView struct {
	idea.Validation
	Fallback     bool
	ScoreCards   []ScoreCard
	Improvements []scoring.RecommendationGroup
}

// ScoreCard renders one dimension with its grade and progress bar.
type ScoreCard struct {
	Name    string
	Score   int
	Grade   scoring.Grade
	Percent int
	Caption string
}

func loadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"showBadge": func(c scoring.Category) bool { return c != scoring.CategoryGeneral },
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

func newResultView(result idea.Result) *ResultView {
	v := result.Validation
	return &ResultView{
		Validation: v,
		Fallback:   result.Fallback,
		ScoreCards: []ScoreCard{
			newScoreCard("Viability", v.Viability, "Market potential and demand"),
			newScoreCard("Feasibility", v.Feasibility, "Technical implementation difficulty"),
			newScoreCard("Usability", v.Usability, "User experience and adoption"),
		},
		Improvements: v.Improvements(),
	}
}

func newScoreCard(name string, score int, caption string) ScoreCard {
	return ScoreCard{
		Name:    name,
		Score:   score,
		Grade:   scoring.GradeScore(score),
		Percent: scoring.Percent(score),
		Caption: caption,
	}
}

func (s *Server) page(tab string) PageData {
	if tab != tabValidate {
		tab = tabGenerate
	}
	return PageData{
		ActiveTab:          tab,
		GenerateCategories: idea.GenerateCategories(),
		ValidateCategories: idea.ValidateCategories(),
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderPage(c, http.StatusOK, s.page(c.Query("tab")))
}

func (s *Server) handleGenerateForm(c *gin.Context) {
	data := s.page(tabGenerate)
	data.SelectedCategory = strings.TrimSpace(c.PostForm("category"))

	result, err := s.ideas.Generate(c.Request.Context(), data.SelectedCategory)
	if err != nil {
		s.renderPageError(c, data, err, alertGenerateError)
		return
	}
	data.Result = newResultView(result)
	s.renderPage(c, http.StatusOK, data)
}

func (s *Server) handleValidateForm(c *gin.Context) {
	data := s.page(tabValidate)
	data.UserIdea = c.PostForm("idea")
	data.SelectedCategory = strings.TrimSpace(c.PostForm("category"))

	result, err := s.ideas.Validate(c.Request.Context(), data.UserIdea, data.SelectedCategory)
	if err != nil {
		if errors.Is(err, idea.ErrIdeaRequired) {
			data.Alert = alertIdeaRequired
			s.renderPage(c, http.StatusBadRequest, data)
			return
		}
		s.renderPageError(c, data, err, alertValidateError)
		return
	}
	data.Result = newResultView(result)
	s.renderPage(c, http.StatusOK, data)
}

func (s *Server) renderPageError(c *gin.Context, data PageData, err error, alert string) {
	_ = c.Error(err)
	status := http.StatusInternalServerError
	data.Alert = alert
	if errors.Is(err, ai.ErrDisabled) {
		status = http.StatusServiceUnavailable
		data.Alert = alertAIDisabled
	}
	s.renderPage(c, status, data)
}

func (s *Server) renderPage(c *gin.Context, status int, data PageData) {
	c.HTML(status, "index.tmpl", data)
}
