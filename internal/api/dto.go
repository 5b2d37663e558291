package api

import (
	"strings"

	"idea-eval/backend/internal/scoring"
)

// GenerateIdeaRequest is the body of POST /api/generate-idea. A null or
// missing category lets the model choose.
type GenerateIdeaRequest struct {
	Category *string `json:"category"`
}

func (r GenerateIdeaRequest) category() string {
	if r.Category == nil {
		return ""
	}
	return strings.TrimSpace(*r.Category)
}

// ValidateIdeaRequest is the body of POST /api/validate-idea.
type ValidateIdeaRequest struct {
	Idea     string `json:"idea"`
	Category string `json:"category"`
}

// RecommendationsRequest carries the scores to run through the rule engine.
// Pointers distinguish a missing score from a zero score.
type RecommendationsRequest struct {
	Viability   *int `json:"viability" binding:"required"`
	Feasibility *int `json:"feasibility" binding:"required"`
	Usability   *int `json:"usability" binding:"required"`
}

func (r RecommendationsRequest) scores() scoring.ScoredIdea {
	return scoring.ScoredIdea{
		Viability:   *r.Viability,
		Feasibility: *r.Feasibility,
		Usability:   *r.Usability,
	}
}

// RecommendationsResponse lists the improvement groups and the grade of each dimension.
type RecommendationsResponse struct {
	Items  []scoring.RecommendationGroup `json:"items"`
	Grades map[string]scoring.Grade      `json:"grades"`
}

// ConfigResponse describes what the server offers to clients.
type ConfigResponse struct {
	GenerateCategories []string `json:"generate_categories"`
	ValidateCategories []string `json:"validate_categories"`
	AIEnabled          bool     `json:"ai_enabled"`
	Provider           string   `json:"provider"`
	Model              string   `json:"model"`
	Cutoff             int      `json:"cutoff"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

func gradesFor(s scoring.ScoredIdea) map[string]scoring.Grade {
	return map[string]scoring.Grade{
		string(scoring.CategoryViability):   scoring.GradeScore(s.Viability),
		string(scoring.CategoryFeasibility): scoring.GradeScore(s.Feasibility),
		string(scoring.CategoryUsability):   scoring.GradeScore(s.Usability),
	}
}
