package idea

import "strings"

const (
	// DefaultCategory is assumed for generated ideas when none was requested.
	DefaultCategory = "Productivity & Organization"
	// GeneralCategory is assumed for submitted ideas without a category.
	GeneralCategory = "General"
	// RandomCategory lets the model choose; it is only offered for generation.
	RandomCategory = "Random (AI chooses)"
)

var categories = []string{
	"Productivity & Organization",
	"Health & Fitness",
	"E-commerce & Marketplaces",
	"Social & Community",
	"Education & Learning",
	"Finance & Fintech",
	"Content Creation",
	"Local Services",
	"Entertainment",
	RandomCategory,
}

// GenerateCategories lists the categories offered when generating an idea.
func GenerateCategories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidateCategories lists the categories offered when validating an idea.
func ValidateCategories() []string {
	out := make([]string, len(categories)-1)
	copy(out, categories[:len(categories)-1])
	return out
}

// IsKnownCategory reports whether name matches one of the offered categories, ignoring case.
func IsKnownCategory(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
