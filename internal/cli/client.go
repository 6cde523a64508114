// Package cli provides a small MCP client for talking to a running
// `ooctl serve` instance.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultTimeout = 30 * time.Second

// Client is a simplified MCP client for CLI commands
type Client struct {
	client  *client.Client
	timeout time.Duration
}

// Dial connects to an SSE endpoint such as http://localhost:8090/sse.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	sseClient, err := client.NewSSEMCPClient(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE client: %w", err)
	}
	return start(ctx, sseClient)
}

// NewInProcess connects directly to s without a transport.
func NewInProcess(ctx context.Context, s *server.MCPServer) (*Client, error) {
	inProcess, err := client.NewInProcessClient(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-process client: %w", err)
	}
	return start(ctx, inProcess)
}

func start(ctx context.Context, mcpClient *client.Client) (*Client, error) {
	if err := mcpClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start client: %w", err)
	}

	c := &Client{client: mcpClient, timeout: defaultTimeout}
	if err := c.initialize(ctx); err != nil {
		mcpClient.Close()
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return c, nil
}

// ListTools returns the sorted names of the tools the server offers.
func (c *Client) ListTools(ctx context.Context) ([]string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools failed: %w", err)
	}

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return names, nil
}

// CallTool executes a tool and returns the result
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns its text content. A result
// flagged as an error is returned as a Go error.
func (c *Client) CallToolSimple(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	text := textContent(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %s", text)
	}
	return text, nil
}

// CallToolJSON executes a tool and decodes its text content into out.
func (c *Client) CallToolJSON(ctx context.Context, name string, args map[string]any, out any) error {
	text, err := c.CallToolSimple(ctx, name, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("tool %s returned invalid JSON: %w", name, err)
	}
	return nil
}

// Close closes the connection
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

func (c *Client) initialize(ctx context.Context) error {
	var req mcp.InitializeRequest
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "ooctl-cli",
		Version: "1.0.0",
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func textContent(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
