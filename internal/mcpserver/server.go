// Package mcpserver exposes the concept catalogue as MCP tools, over stdio
// or an SSE endpoint.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"ooctl/internal/catalogue"
	"ooctl/internal/config"
	"ooctl/pkg/logging"
)

const (
	serverName        = "ooctl"
	keepAliveInterval = 30 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server wraps an MCP server backed by a catalogue registry.
type Server struct {
	registry  *catalogue.Registry
	cfg       config.OoctlConfig
	logger    *logging.Logger
	mcpServer *server.MCPServer
}

// New creates a server with the catalogue tools registered.
func New(registry *catalogue.Registry, cfg config.OoctlConfig, logger *logging.Logger, version string) *Server {
	s := &Server{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		mcpServer: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.mcpServer.AddTools(s.tools()...)
	return s
}

// Serve blocks serving MCP requests on stdin and stdout.
func (s *Server) Serve() error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	s.logger.Info("MCPServer", "Serving %d concepts on stdio", len(s.registry.Names()))
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// ServeSSE serves MCP over HTTP on addr until ctx is cancelled. Clients
// connect to http://<addr>/sse.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(keepAliveInterval),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(addr)
	}()
	s.logger.Info("MCPServer", "Serving %d concepts on http://%s/sse", len(s.registry.Names()), addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP over SSE: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("MCPServer", "Shutting down SSE server")
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown SSE server: %w", err)
		}
		return nil
	}
}

// MCPServer returns the underlying server, for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}
