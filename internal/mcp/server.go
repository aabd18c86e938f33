// Package mcp exposes diagram generation as an MCP tool so agents can turn
// Go source snippets into class diagrams over stdio.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/engine"
)

// Server manages the MCP server lifecycle.
type Server struct {
	engine *engine.Engine
	mcp    *server.MCPServer
}

// NewServer creates an MCP server exposing the diagram tool.
func NewServer(eng *engine.Engine) (*Server, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}

	mcpServer := server.NewMCPServer(
		"go2uml-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddDiagramTool(mcpServer, eng)

	return &Server{
		engine: eng,
		mcp:    mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
