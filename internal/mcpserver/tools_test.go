package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ooctl/internal/catalogue"
	"ooctl/internal/config"
	"ooctl/pkg/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry, err := catalogue.Default(logging.Discard())
	require.NoError(t, err)
	return New(registry, config.GetDefaultConfig(), logging.Discard(), "test")
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestTools_Registered(t *testing.T) {
	s := newTestServer(t)

	var names []string
	for _, tool := range s.tools() {
		names = append(names, tool.Tool.Name)
	}
	assert.Equal(t, []string{toolList, toolShow, toolRun}, names)
}

func TestHandleList(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleList(context.Background(), callRequest(toolList, map[string]any{"category": "principle"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got []conceptSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.Len(t, got, 5)
	for _, c := range got {
		assert.Equal(t, catalogue.CategoryPrinciple, c.Category)
		assert.True(t, c.HasDemo)
	}
}

func TestHandleList_UnknownCategory(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleList(context.Background(), callRequest(toolList, map[string]any{"category": "antipattern"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleShow(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleShow(context.Background(), callRequest(toolShow, map[string]any{"name": "decorator"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "## ")

	missing, err := s.handleShow(context.Background(), callRequest(toolShow, map[string]any{}))
	require.NoError(t, err)
	assert.True(t, missing.IsError)
}

func TestHandleRun(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleRun(context.Background(), callRequest(toolRun, map[string]any{"name": "decorator"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "160")

	unknown, err := s.handleRun(context.Background(), callRequest(toolRun, map[string]any{"name": "visitor"}))
	require.NoError(t, err)
	assert.True(t, unknown.IsError)
}

func TestHandleRun_CancelledContext(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.handleRun(ctx, callRequest(toolRun, map[string]any{"name": "strategy"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
