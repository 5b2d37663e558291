package idea

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/scoring"
)

// flexibleScore is an int that also accepts fractional and quoted numbers,
// so "viability": 7.5 and "viability": "8" both decode. Fractions are
// floored so that a score below the cutoff stays below it.
type flexibleScore int

func (f *flexibleScore) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexibleScore(scoring.FloorScore(n))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/10")
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("score %q: %w", s, err)
	}
	*f = flexibleScore(scoring.FloorScore(n))
	return nil
}

var errNotObject = errors.New("reply is not a JSON object")

type wireValidation struct {
	Validation
	Viability   flexibleScore `json:"viability"`
	Feasibility flexibleScore `json:"feasibility"`
	Usability   flexibleScore `json:"usability"`
}

// parseValidation decodes a model reply into a Validation.
func parseValidation(raw string) (Validation, error) {
	content := ai.ExtractJSON(raw)
	if content == "" {
		return Validation{}, ai.ErrEmptyResponse
	}
	if !strings.HasPrefix(content, "{") {
		return Validation{}, fmt.Errorf("parse ai response: %w", errNotObject)
	}
	var wire wireValidation
	if err := json.Unmarshal([]byte(content), &wire); err != nil {
		return Validation{}, fmt.Errorf("parse ai response: %w", err)
	}
	v := wire.Validation
	v.Viability = int(wire.Viability)
	v.Feasibility = int(wire.Feasibility)
	v.Usability = int(wire.Usability)
	return v, nil
}
