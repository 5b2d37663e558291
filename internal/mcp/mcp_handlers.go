package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/idea"
	"idea-eval/backend/internal/scoring"
)

type toolHandler struct {
	ideas *idea.Service
}

// assessment is a validation together with the rule engine output.
type assessment struct {
	idea.Validation
	Fallback     bool                          `json:"fallback,omitempty"`
	Improvements []scoring.RecommendationGroup `json:"improvements"`
}

func (h *toolHandler) handleGenerateIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")

	result, err := h.ideas.Generate(ctx, category)
	if err != nil {
		return upstreamError("generation failed", err), nil
	}
	return jsonResult(newAssessment(result))
}

func (h *toolHandler) handleValidateIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("idea", "")
	category := request.GetString("category", "")

	result, err := h.ideas.Validate(ctx, text, category)
	if err != nil {
		if errors.Is(err, idea.ErrIdeaRequired) {
			return mcp.NewToolResultError("invalid parameters: idea is required"), nil
		}
		return upstreamError("validation failed", err), nil
	}
	return jsonResult(newAssessment(result))
}

func (h *toolHandler) handleRecommend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var scores scoring.ScoredIdea
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"viability", &scores.Viability},
		{"feasibility", &scores.Feasibility},
		{"usability", &scores.Usability},
	} {
		v, err := request.RequireFloat(field.name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
		*field.dst = scoring.FloorScore(v)
	}
	return jsonResult(scoring.RecommendationsFor(scores))
}

func newAssessment(result idea.Result) assessment {
	return assessment{
		Validation:   result.Validation,
		Fallback:     result.Fallback,
		Improvements: result.Validation.Improvements(),
	}
}

func upstreamError(prefix string, err error) *mcp.CallToolResult {
	if errors.Is(err, ai.ErrDisabled) {
		return mcp.NewToolResultError(prefix + ": AI provider not configured")
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", prefix, err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
