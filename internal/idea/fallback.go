package idea

// fallbackGenerated stands in for a generated idea whose reply could not be
// parsed; the raw reply becomes the idea text.
func fallbackGenerated(raw, category string) Validation {
	if category == "" {
		category = DefaultCategory
	}
	return Validation{
		Idea:             raw,
		Category:         category,
		Viability:        8,
		Feasibility:      8,
		Usability:        8,
		Persona:          "Tech-savvy professionals seeking efficiency solutions",
		ValueProposition: "Streamlines workflows and saves time through AI automation",
		Monetization:     []string{"Freemium subscription", "Enterprise licensing", "API access"},
		DevelopmentTime:  "2-4 weeks",
		MarketSize:       "Growing market with strong demand",
		TechStack:        []string{"Next.js", "OpenAI API", "Supabase"},
		KeyFeatures:      []string{"AI-powered automation", "User dashboard", "Analytics"},
	}
}

// fallbackValidation stands in for a validation reply that could not be parsed.
func fallbackValidation(ideaText, category string) Validation {
	return Validation{
		Idea:               ideaText,
		Category:           category,
		Viability:          7,
		Feasibility:        8,
		Usability:          7,
		Persona:            "Tech-savvy professionals looking for productivity solutions",
		ValueProposition:   "Addresses a real problem with a clear solution",
		Monetization:       []string{"Freemium model", "Premium features", "Enterprise plans"},
		DevelopmentTime:    "3-4 weeks",
		MarketSize:         "Medium-sized market with growth potential",
		Strengths:          []string{"Clear problem-solution fit", "Leverages AI effectively"},
		Challenges:         []string{"Market competition", "User acquisition"},
		Recommendations:    []string{"Focus on MVP features", "Validate with target users"},
		TechStack:          []string{"Next.js", "OpenAI API", "Database"},
		CompetitorAnalysis: "Several competitors exist but opportunity for differentiation",
	}
}
