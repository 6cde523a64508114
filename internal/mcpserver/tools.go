package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ooctl/internal/catalogue"
	"ooctl/internal/render"
)

const (
	toolList = "concept_list"
	toolShow = "concept_show"
	toolRun  = "concept_run"
)

// conceptSummary is the concept_list payload for one entry.
type conceptSummary struct {
	Name     string             `json:"name"`
	Title    string             `json:"title"`
	Category catalogue.Category `json:"category"`
	Summary  string             `json:"summary"`
	HasDemo  bool               `json:"hasDemo"`
}

func (s *Server) tools() []server.ServerTool {
	names := s.registry.Names()
	categories := make([]string, 0, len(catalogue.Categories))
	for _, c := range catalogue.Categories {
		categories = append(categories, string(c))
	}

	return []server.ServerTool{
		{
			Tool: mcp.NewTool(toolList,
				mcp.WithDescription("List catalogue concepts, optionally filtered by category"),
				mcp.WithString("category",
					mcp.Description("Only list concepts of this category"),
					mcp.Enum(categories...),
				),
			),
			Handler: s.handleList,
		},
		{
			Tool: mcp.NewTool(toolShow,
				mcp.WithDescription("Show the notes and code samples of a concept as markdown"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Concept name"),
					mcp.Enum(names...),
				),
			),
			Handler: s.handleShow,
		},
		{
			Tool: mcp.NewTool(toolRun,
				mcp.WithDescription("Run the demo of a concept and return its output"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Concept name"),
					mcp.Enum(names...),
				),
			),
			Handler: s.handleRun,
		},
	}
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, _ := request.GetArguments()["category"].(string)
	category, err := catalogue.ParseCategory(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	concepts := s.registry.List(category)
	out := make([]conceptSummary, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, conceptSummary{
			Name:     c.Name,
			Title:    c.Title,
			Category: c.Category,
			Summary:  c.Summary,
			HasDemo:  c.Demo != nil,
		})
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format concepts: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	c, err := s.registry.Get(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.Markdown(c)), nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	var buf bytes.Buffer
	env := &catalogue.Env{Out: &buf, Logger: s.logger, Config: s.cfg}
	if err := s.registry.Run(ctx, name, env); err != nil {
		s.logger.Error("MCPServer", err, "Tool %s failed for %s", toolRun, name)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
