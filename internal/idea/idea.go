package idea

import (
	"strings"

	"idea-eval/backend/internal/scoring"
)

// Validation is the assessment returned for both generated and submitted ideas.
type Validation struct {
	Idea               string   `json:"idea"`
	Category           string   `json:"category"`
	Viability          int      `json:"viability"`
	Feasibility        int      `json:"feasibility"`
	Usability          int      `json:"usability"`
	Persona            string   `json:"persona"`
	ValueProposition   string   `json:"valueProposition"`
	Monetization       []string `json:"monetization"`
	DevelopmentTime    string   `json:"developmentTime"`
	MarketSize         string   `json:"marketSize"`
	TechStack          []string `json:"techStack,omitempty"`
	KeyFeatures        []string `json:"keyFeatures,omitempty"`
	Strengths          []string `json:"strengths,omitempty"`
	Challenges         []string `json:"challenges,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	CompetitorAnalysis string   `json:"competitorAnalysis,omitempty"`
}

// Scores projects the validation onto the rule engine input.
func (v Validation) Scores() scoring.ScoredIdea {
	return scoring.ScoredIdea{
		Viability:   v.Viability,
		Feasibility: v.Feasibility,
		Usability:   v.Usability,
	}
}

// Improvements runs the recommendation rules against the validation scores.
func (v Validation) Improvements() []scoring.RecommendationGroup {
	return scoring.RecommendationsFor(v.Scores())
}

// sanitize trims free text, drops blank list entries and fills identity fields
// the model left out.
func (v *Validation) sanitize(ideaText, category string) {
	v.Idea = strings.TrimSpace(v.Idea)
	if v.Idea == "" {
		v.Idea = strings.TrimSpace(ideaText)
	}
	v.Category = strings.TrimSpace(v.Category)
	if v.Category == "" {
		v.Category = category
	}
	v.Persona = strings.TrimSpace(v.Persona)
	v.ValueProposition = strings.TrimSpace(v.ValueProposition)
	v.DevelopmentTime = strings.TrimSpace(v.DevelopmentTime)
	v.MarketSize = strings.TrimSpace(v.MarketSize)
	v.CompetitorAnalysis = strings.TrimSpace(v.CompetitorAnalysis)

	v.Monetization = cleanList(v.Monetization)
	if v.Monetization == nil {
		v.Monetization = []string{}
	}
	v.TechStack = cleanList(v.TechStack)
	v.KeyFeatures = cleanList(v.KeyFeatures)
	v.Strengths = cleanList(v.Strengths)
	v.Challenges = cleanList(v.Challenges)
	v.Recommendations = cleanList(v.Recommendations)
}

func cleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
