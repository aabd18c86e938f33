package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/engine"
)

// AddDiagramTool registers the go2uml_diagram tool with an MCP server.
// This function is composable - it can be combined with other tool registrations.
func AddDiagramTool(s *server.MCPServer, eng *engine.Engine) {
	tool := mcp.NewTool(
		"go2uml_diagram",
		mcp.WithDescription("Generate a Mermaid class diagram from a snippet of Go source code. Extracts structs, interfaces, fields, methods, embedding, and inferred interface satisfaction."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Go source text to analyze. May be a partial file; type declarations and method declarations are extracted structurally.")),
	)

	s.AddTool(tool, createDiagramHandler(eng))
}

// createDiagramHandler creates the handler function for the go2uml_diagram tool.
func createDiagramHandler(eng *engine.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		source, ok := argsMap["source"].(string)
		if !ok || source == "" {
			return mcp.NewToolResultError("source parameter is required"), nil
		}

		diagram, err := eng.Diagram(source)
		if err != nil {
			// Input problems are tool-level errors the agent can correct,
			// not transport failures.
			if errors.Is(err, engine.ErrEmptyInput) || errors.Is(err, engine.ErrNoDeclarations) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return nil, err
		}

		return mcp.NewToolResultText(diagram), nil
	}
}
