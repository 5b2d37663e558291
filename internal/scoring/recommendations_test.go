package scoring

import (
	"reflect"
	"testing"
)

func categories(groups []RecommendationGroup) []Category {
	out := make([]Category, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Type)
	}
	return out
}

func TestRecommendationsFor(t *testing.T) {
	tests := []struct {
		name     string
		idea     ScoredIdea
		expected []Category
	}{
		{"viability only", ScoredIdea{Viability: 7, Feasibility: 8, Usability: 9}, []Category{CategoryViability, CategoryGeneral}},
		{"all at cutoff", ScoredIdea{Viability: 8, Feasibility: 8, Usability: 8}, []Category{CategoryOptimization}},
		{"all low", ScoredIdea{Viability: 5, Feasibility: 5, Usability: 5}, []Category{CategoryViability, CategoryFeasibility, CategoryUsability, CategoryGeneral}},
		{"feasibility and usability", ScoredIdea{Viability: 10, Feasibility: 3, Usability: 7}, []Category{CategoryFeasibility, CategoryUsability, CategoryGeneral}},
		{"usability only", ScoredIdea{Viability: 9, Feasibility: 9, Usability: 1}, []Category{CategoryUsability, CategoryGeneral}},
		{"all high", ScoredIdea{Viability: 10, Feasibility: 9, Usability: 10}, []Category{CategoryOptimization}},
		{"zero scores", ScoredIdea{}, []Category{CategoryViability, CategoryFeasibility, CategoryUsability, CategoryGeneral}},
		{"above range", ScoredIdea{Viability: 15, Feasibility: 15, Usability: 15}, []Category{CategoryOptimization}},
		{"negative", ScoredIdea{Viability: -3, Feasibility: 12, Usability: 8}, []Category{CategoryViability, CategoryGeneral}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := categories(RecommendationsFor(tc.idea))
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %v got %v", tc.expected, got)
			}
		})
	}
}

func TestRecommendationsForAllScores(t *testing.T) {
	for v := -1; v <= 11; v++ {
		for f := -1; f <= 11; f++ {
			for u := -1; u <= 11; u++ {
				idea := ScoredIdea{Viability: v, Feasibility: f, Usability: u}
				groups := RecommendationsFor(idea)
				if len(groups) < 1 || len(groups) > 4 {
					t.Fatalf("%+v: expected 1-4 groups, got %d", idea, len(groups))
				}

				aggregates := 0
				for _, g := range groups {
					if g.Type == CategoryOptimization || g.Type == CategoryGeneral {
						aggregates++
					}
				}
				if aggregates != 1 {
					t.Fatalf("%+v: expected exactly one aggregate group, got %d", idea, aggregates)
				}

				last := groups[len(groups)-1].Type
				if idea.MeetsCutoff() {
					if len(groups) != 1 || last != CategoryOptimization {
						t.Fatalf("%+v: expected single optimization group, got %v", idea, categories(groups))
					}
				} else if last != CategoryGeneral {
					t.Fatalf("%+v: expected trailing general group, got %s", idea, last)
				}

				var want []Category
				if v < Cutoff {
					want = append(want, CategoryViability)
				}
				if f < Cutoff {
					want = append(want, CategoryFeasibility)
				}
				if u < Cutoff {
					want = append(want, CategoryUsability)
				}
				if got := categories(groups[:len(groups)-1]); len(want) > 0 && !reflect.DeepEqual(got, want) {
					t.Fatalf("%+v: expected dimension groups %v got %v", idea, want, got)
				}
			}
		}
	}
}

func TestRecommendationsForIsDeterministic(t *testing.T) {
	idea := ScoredIdea{Viability: 6, Feasibility: 9, Usability: 4}
	first := RecommendationsFor(idea)
	second := RecommendationsFor(idea)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %v and %v", first, second)
	}
}

func TestRecommendationsForReturnsCopies(t *testing.T) {
	idea := ScoredIdea{Viability: 1, Feasibility: 1, Usability: 1}
	first := RecommendationsFor(idea)
	first[0].Suggestions[0] = "mutated"
	first[0].Suggestions = append(first[0].Suggestions, "extra")

	second := RecommendationsFor(idea)
	if second[0].Suggestions[0] == "mutated" {
		t.Fatalf("suggestion table was mutated through a returned group")
	}
	if len(second[0].Suggestions) != 5 {
		t.Fatalf("expected 5 viability suggestions, got %d", len(second[0].Suggestions))
	}
}

func TestRecommendationTitles(t *testing.T) {
	groups := RecommendationsFor(ScoredIdea{Viability: 1, Feasibility: 1, Usability: 1})
	titles := []string{
		"Improve Market Viability",
		"Enhance Technical Feasibility",
		"Boost User Experience",
		"Score Improvement Priorities",
	}
	for i, title := range titles {
		if groups[i].Title != title {
			t.Fatalf("group %d: expected title %q got %q", i, title, groups[i].Title)
		}
		if len(groups[i].Suggestions) == 0 {
			t.Fatalf("group %d has no suggestions", i)
		}
	}

	top := RecommendationsFor(ScoredIdea{Viability: 9, Feasibility: 9, Usability: 9})
	if top[0].Title != "Optimization Opportunities" || len(top[0].Suggestions) != 4 {
		t.Fatalf("unexpected optimization group: %+v", top[0])
	}
}
