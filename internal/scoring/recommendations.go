package scoring

// Cutoff is the score an idea must reach on a dimension before no improvement
// group is emitted for it.
const Cutoff = 8

// Category tags a recommendation group.
type Category string

const (
	CategoryViability    Category = "viability"
	CategoryFeasibility  Category = "feasibility"
	CategoryUsability    Category = "usability"
	CategoryOptimization Category = "optimization"
	CategoryGeneral      Category = "general"
)

// ScoredIdea is the three-dimensional score tuple that drives recommendation
// selection. Values are conventionally 1-10 but are never clamped.
type ScoredIdea struct {
	Viability   int `json:"viability"`
	Feasibility int `json:"feasibility"`
	Usability   int `json:"usability"`
}

// RecommendationGroup is a titled bundle of suggestions for one category.
type RecommendationGroup struct {
	Type        Category `json:"type"`
	Title       string   `json:"title"`
	Suggestions []string `json:"suggestions"`
}

type groupTemplate struct {
	title       string
	suggestions []string
}

var groupTemplates = map[Category]groupTemplate{
	CategoryViability: {
		title: "Improve Market Viability",
		suggestions: []string{
			"Target a larger addressable market or expand to adjacent markets",
			"Increase pricing power by adding premium AI features that justify higher costs",
			"Reduce customer acquisition costs by focusing on viral or referral mechanics",
			"Demonstrate stronger product-market fit through user retention metrics",
			"Add network effects that make the product more valuable as more users join",
		},
	},
	CategoryFeasibility: {
		title: "Enhance Technical Feasibility",
		suggestions: []string{
			"Reduce technical complexity by using pre-built AI APIs instead of custom models",
			"Minimize data requirements by starting with simpler input/output patterns",
			"Lower development risk by building on proven tech stacks (Next.js, Supabase, etc.)",
			"Decrease time-to-market by focusing on core AI functionality first",
			"Reduce infrastructure costs by choosing serverless or managed services",
		},
	},
	CategoryUsability: {
		title: "Boost User Experience",
		suggestions: []string{
			"Simplify the user interface by reducing cognitive load and decision points",
			"Improve onboarding flow to demonstrate value within the first 30 seconds",
			"Enhance AI transparency by showing users how the system makes decisions",
			"Reduce friction by minimizing required user inputs and setup steps",
			"Increase perceived value through better visual design and micro-interactions",
		},
	},
	CategoryOptimization: {
		title: "Optimization Opportunities",
		suggestions: []string{
			"Scale viability by expanding to enterprise customers or B2B markets",
			"Improve feasibility by automating more processes to reduce operational overhead",
			"Enhance usability through A/B testing key user flows and interactions",
			"Consider adding AI personalization to increase user engagement scores",
		},
	},
	CategoryGeneral: {
		title: "Score Improvement Priorities",
		suggestions: []string{
			"Focus on your lowest scoring dimension first for maximum impact",
			"Validate assumptions through user testing before building complex features",
			"Consider pivoting features that score below 6 in any dimension",
			"Benchmark against successful apps in your category to identify gaps",
		},
	},
}

// RecommendationsFor maps a scored idea to its ordered improvement groups:
// one group per dimension below Cutoff (viability, feasibility, usability),
// followed by exactly one aggregate group.
func RecommendationsFor(idea ScoredIdea) []RecommendationGroup {
	groups := make([]RecommendationGroup, 0, 4)

	dimensions := []struct {
		category Category
		score    int
	}{
		{CategoryViability, idea.Viability},
		{CategoryFeasibility, idea.Feasibility},
		{CategoryUsability, idea.Usability},
	}
	for _, d := range dimensions {
		if d.score < Cutoff {
			groups = append(groups, newGroup(d.category))
		}
	}

	if idea.MeetsCutoff() {
		groups = append(groups, newGroup(CategoryOptimization))
	} else {
		groups = append(groups, newGroup(CategoryGeneral))
	}
	return groups
}

// MeetsCutoff reports whether every dimension reaches Cutoff.
func (s ScoredIdea) MeetsCutoff() bool {
	return s.Viability >= Cutoff && s.Feasibility >= Cutoff && s.Usability >= Cutoff
}

func newGroup(category Category) RecommendationGroup {
	tmpl := groupTemplates[category]
	suggestions := make([]string, len(tmpl.suggestions))
	copy(suggestions, tmpl.suggestions)
	return RecommendationGroup{
		Type:        category,
		Title:       tmpl.title,
		Suggestions: suggestions,
	}
}
