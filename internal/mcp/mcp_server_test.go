package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/idea"
	mcp_internal "idea-eval/backend/internal/mcp"
	"idea-eval/backend/internal/scoring"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Enabled() bool { return true }

func (s stubCompleter) Name() string { return "stub/model" }

func (s stubCompleter) Complete(context.Context, ai.Request) (string, error) {
	return s.reply, s.err
}

func callTool(t *testing.T, svc *idea.Service, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(svc, "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "tool failures are reported in the result, not as errors")
	require.NotEmpty(t, res.Content)
	return res
}

func resultText(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestRecommendTool(t *testing.T) {
	svc := idea.NewService(nil)

	t.Run("all strong", func(t *testing.T) {
		res := callTool(t, svc, "recommend", map[string]any{"viability": 9.0, "feasibility": 8.0, "usability": 10.0})
		require.False(t, res.IsError)

		var groups []scoring.RecommendationGroup
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &groups))
		require.Len(t, groups, 1)
		assert.Equal(t, scoring.CategoryOptimization, groups[0].Type)
	})

	t.Run("weak usability", func(t *testing.T) {
		res := callTool(t, svc, "recommend", map[string]any{"viability": 8.0, "feasibility": 8.0, "usability": 5.0})
		require.False(t, res.IsError)

		var groups []scoring.RecommendationGroup
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &groups))
		require.Len(t, groups, 2)
		assert.Equal(t, scoring.CategoryUsability, groups[0].Type)
		assert.Equal(t, scoring.CategoryGeneral, groups[1].Type)
	})

	t.Run("fractional scores below cutoff", func(t *testing.T) {
		res := callTool(t, svc, "recommend", map[string]any{"viability": 7.5, "feasibility": 7.6, "usability": 7.9})
		require.False(t, res.IsError)

		var groups []scoring.RecommendationGroup
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &groups))
		require.Len(t, groups, 4)
		assert.Equal(t, scoring.CategoryViability, groups[0].Type)
		assert.Equal(t, scoring.CategoryGeneral, groups[3].Type)
	})

	t.Run("missing score", func(t *testing.T) {
		res := callTool(t, svc, "recommend", map[string]any{"viability": 8.0, "feasibility": 8.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "usability")
	})
}

func TestValidateIdeaTool(t *testing.T) {
	reply := `{"idea":"Shift meal planner","category":"Health & Fitness","viability":7,"feasibility":9,"usability":8,"persona":"Nurses","valueProposition":"Meals on your schedule","monetization":["Subscription"],"developmentTime":"3 weeks","marketSize":"Large"}`

	t.Run("missing idea", func(t *testing.T) {
		res := callTool(t, idea.NewService(stubCompleter{reply: reply}), "validate_idea", map[string]any{"idea": "  "})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "idea is required")
	})

	t.Run("scored", func(t *testing.T) {
		res := callTool(t, idea.NewService(stubCompleter{reply: reply}), "validate_idea", map[string]any{"idea": "Shift meal planner"})
		require.False(t, res.IsError)

		var out struct {
			Viability    int                           `json:"viability"`
			Improvements []scoring.RecommendationGroup `json:"improvements"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &out))
		assert.Equal(t, 7, out.Viability)
		require.Len(t, out.Improvements, 2)
		assert.Equal(t, scoring.CategoryViability, out.Improvements[0].Type)
	})

	t.Run("upstream failure", func(t *testing.T) {
		res := callTool(t, idea.NewService(stubCompleter{err: errors.New("rate limited")}), "validate_idea", map[string]any{"idea": "Shift meal planner"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "rate limited")
	})
}

func TestGenerateIdeaTool(t *testing.T) {
	res := callTool(t, idea.NewService(nil), "generate_idea", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "not configured")

	res = callTool(t, idea.NewService(stubCompleter{reply: "Just text"}), "generate_idea", map[string]any{"category": "Entertainment"})
	require.False(t, res.IsError)
	var out struct {
		Idea     string `json:"idea"`
		Category string `json:"category"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &out))
	assert.Equal(t, "Just text", out.Idea)
	assert.Equal(t, "Entertainment", out.Category)
	assert.True(t, out.Fallback)
}
