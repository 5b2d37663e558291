package idea

import (
	"fmt"
	"strings"

	"idea-eval/backend/internal/ai"
)

const (
	generateSystemPrompt = "You are an expert product manager and AI developer who creates practical, monetizable app ideas. Always respond with valid JSON only."
	validateSystemPrompt = "You are an expert product manager and venture capitalist who provides honest, actionable feedback on app ideas. Focus on practical, realistic assessments. Always respond with valid JSON only."

	generateTemperature = 0.8
	generateMaxTokens   = 1000
	validateTemperature = 0.3
	validateMaxTokens   = 1200
)

func generateRequest(category string) ai.Request {
	subject := category
	template := category
	if subject == "" {
		subject = "any category"
		template = DefaultCategory
	}

	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Generate a monetizable AI app idea for the category: %s.\n\n", subject)
	builder.WriteString("Requirements:\n")
	builder.WriteString("- Must be buildable with current AI tools in 2-4 weeks\n")
	builder.WriteString("- Should have clear monetization potential\n")
	builder.WriteString("- Target specific user persona\n")
	builder.WriteString("- Solve a real problem\n\n")
	builder.WriteString("Return a JSON object with:\n")
	builder.WriteString("{\n")
	builder.WriteString("  \"idea\": \"Detailed app idea description\",\n")
	fmt.Fprintf(builder, "  \"category\": %q,\n", template)
	builder.WriteString("  \"viability\": number (1-10),\n")
	builder.WriteString("  \"feasibility\": number (1-10),\n")
	builder.WriteString("  \"usability\": number (1-10),\n")
	builder.WriteString("  \"persona\": \"Target user description\",\n")
	builder.WriteString("  \"valueProposition\": \"Clear value statement\",\n")
	builder.WriteString("  \"monetization\": [\"strategy1\", \"strategy2\", \"strategy3\"],\n")
	builder.WriteString("  \"developmentTime\": \"X-Y weeks\",\n")
	builder.WriteString("  \"marketSize\": \"Market size description\",\n")
	builder.WriteString("  \"techStack\": [\"tool1\", \"tool2\", \"tool3\"],\n")
	builder.WriteString("  \"keyFeatures\": [\"feature1\", \"feature2\", \"feature3\"]\n")
	builder.WriteString("}\n\n")
	builder.WriteString("Make it realistic and specific.")

	return ai.Request{
		System:      generateSystemPrompt,
		User:        builder.String(),
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	}
}

func validateRequest(ideaText, category string) ai.Request {
	builder := &strings.Builder{}
	builder.WriteString("Analyze this app idea and provide a detailed validation:\n\n")
	fmt.Fprintf(builder, "App Idea: %q\n", ideaText)
	fmt.Fprintf(builder, "Category: %q\n\n", category)
	builder.WriteString("Evaluate on:\n")
	builder.WriteString("1. Viability (market potential, demand, competition)\n")
	builder.WriteString("2. Feasibility (technical complexity, buildability in 2-4 weeks with AI tools)\n")
	builder.WriteString("3. Usability (user experience, adoption barriers)\n\n")
	builder.WriteString("Return a JSON object with:\n")
	builder.WriteString("{\n")
	fmt.Fprintf(builder, "  \"idea\": %q,\n", ideaText)
	fmt.Fprintf(builder, "  \"category\": %q,\n", category)
	builder.WriteString("  \"viability\": number (1-10),\n")
	builder.WriteString("  \"feasibility\": number (1-10),\n")
	builder.WriteString("  \"usability\": number (1-10),\n")
	builder.WriteString("  \"persona\": \"Specific target user description\",\n")
	builder.WriteString("  \"valueProposition\": \"Clear value statement\",\n")
	builder.WriteString("  \"monetization\": [\"specific strategy1\", \"strategy2\", \"strategy3\"],\n")
	builder.WriteString("  \"developmentTime\": \"X-Y weeks estimate\",\n")
	builder.WriteString("  \"marketSize\": \"Market analysis\",\n")
	builder.WriteString("  \"strengths\": [\"strength1\", \"strength2\"],\n")
	builder.WriteString("  \"challenges\": [\"challenge1\", \"challenge2\"],\n")
	builder.WriteString("  \"recommendations\": [\"recommendation1\", \"recommendation2\"],\n")
	builder.WriteString("  \"techStack\": [\"recommended tool1\", \"tool2\", \"tool3\"],\n")
	builder.WriteString("  \"competitorAnalysis\": \"Brief analysis of existing solutions\"\n")
	builder.WriteString("}\n\n")
	builder.WriteString("Be honest about scores and provide actionable insights.")

	return ai.Request{
		System:      validateSystemPrompt,
		User:        builder.String(),
		Temperature: validateTemperature,
		MaxTokens:   validateMaxTokens,
	}
}
