package scoring

import "math"

// Tier buckets a score for presentation.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Grade is the human-facing label attached to a single dimension score.
type Grade struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

// GradeScore labels a score: Excellent at Cutoff or above, Good from 6, Needs Work below.
func GradeScore(score int) Grade {
	switch {
	case score >= Cutoff:
		return Grade{Label: "Excellent", Tier: TierHigh}
	case score >= 6:
		return Grade{Label: "Good", Tier: TierMedium}
	default:
		return Grade{Label: "Needs Work", Tier: TierLow}
	}
}

// Percent converts a 1-10 score into a progress-bar width.
func Percent(score int) int {
	pct := score * 10
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FloorScore converts a fractional score to the int the rules see. Flooring
// keeps x < Cutoff equivalent to FloorScore(x) < Cutoff.
func FloorScore(x float64) int {
	return int(math.Floor(x))
}
