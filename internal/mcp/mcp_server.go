// Package mcp exposes idea generation, validation and the recommendation
// rules as Model Context Protocol tools.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"idea-eval/backend/internal/idea"
)

// NewMCPServer registers the tools without starting the server.
func NewMCPServer(ideas *idea.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"App Idea Lab",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{ideas: ideas}

	s.AddTool(mcp.NewTool("generate_idea",
		mcp.WithDescription("Generate a monetizable AI app idea that can be built in 2-4 weeks, scored for viability, feasibility and usability."),
		mcp.WithString("category", mcp.Description("App category. Leave empty to let the model choose."), mcp.Enum(idea.GenerateCategories()...)),
	), h.handleGenerateIdea)

	s.AddTool(mcp.NewTool("validate_idea",
		mcp.WithDescription("Score an app idea for viability, feasibility and usability and suggest how to improve it."),
		mcp.WithString("idea", mcp.Description("Description of the app idea."), mcp.Required()),
		mcp.WithString("category", mcp.Description("App category. Defaults to General.")),
	), h.handleValidateIdea)

	s.AddTool(mcp.NewTool("recommend",
		mcp.WithDescription("List improvement suggestions for a set of 0-10 scores. No model call is made."),
		mcp.WithNumber("viability", mcp.Description("Market viability score."), mcp.Required()),
		mcp.WithNumber("feasibility", mcp.Description("Technical feasibility score."), mcp.Required()),
		mcp.WithNumber("usability", mcp.Description("Usability score."), mcp.Required()),
	), h.handleRecommend)

	return s
}

// StartMCPServer serves the tools over stdio until the input closes.
func StartMCPServer(_ context.Context, ideas *idea.Service, version string) error {
	s := NewMCPServer(ideas, version)
	return server.ServeStdio(s)
}
