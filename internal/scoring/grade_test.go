package scoring

import "testing"

func TestGradeScore(t *testing.T) {
	tests := []struct {
		score int
		label string
		tier  Tier
	}{
		{10, "Excellent", TierHigh},
		{8, "Excellent", TierHigh},
		{7, "Good", TierMedium},
		{6, "Good", TierMedium},
		{5, "Needs Work", TierLow},
		{0, "Needs Work", TierLow},
	}
	for _, tc := range tests {
		grade := GradeScore(tc.score)
		if grade.Label != tc.label || grade.Tier != tc.tier {
			t.Fatalf("score %d: expected %s/%s got %s/%s", tc.score, tc.label, tc.tier, grade.Label, grade.Tier)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := map[int]int{-2: 0, 0: 0, 7: 70, 10: 100, 15: 100}
	for score, expected := range cases {
		if got := Percent(score); got != expected {
			t.Fatalf("score %d: expected %d got %d", score, expected, got)
		}
	}
}

func TestFloorScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{7.99, 7},
		{7.5, 7},
		{8, 8},
		{8.4, 8},
		{0, 0},
		{-0.5, -1},
	}
	for _, tc := range tests {
		if got := FloorScore(tc.in); got != tc.want {
			t.Fatalf("FloorScore(%v) = %d, want %d", tc.in, got, tc.want)
		}
		if (tc.in < Cutoff) != (FloorScore(tc.in) < Cutoff) {
			t.Fatalf("FloorScore(%v) moved the score across the cutoff", tc.in)
		}
	}
}
