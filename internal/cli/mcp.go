package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/config"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for diagram generation",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered
coding assistants generate class diagrams from Go source snippets.

The MCP server:
- Exposes the go2uml_diagram tool (Go source in, Mermaid text out)
- Communicates via stdio (standard MCP transport)

Example:
  go2uml mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	eng, closeEngine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer closeEngine()

	server, err := mcp.NewServer(eng)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.Serve(cmd.Context())
}
