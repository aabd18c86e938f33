package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/engine"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/graph"
)

var (
	inspectTarget string
	inspectOp     string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Query structural relationships in a Go source file",
	Long: `Inspect extracts the structural model from one source file and answers
relationship queries over it without emitting a diagram.

Operations:
  implementations  aggregates satisfying a contract (inferred, by method names)
  contracts        contracts a given aggregate satisfies
  embedders        entities that embed the target
  embeds           entities the target embeds

Example:
  go2uml inspect pkg/types.go --target Animal --op implementations`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectTarget, "target", "", "Entity name to query (required)")
	inspectCmd.Flags().StringVar(&inspectOp, "op", string(graph.OperationImplementations), "Query operation")
	inspectCmd.MarkFlagRequired("target")
}

func runInspect(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	model, err := engine.New().Extract(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	searcher, err := graph.NewSearcher(model)
	if err != nil {
		return fmt.Errorf("failed to build searcher: %w", err)
	}

	results, err := searcher.Query(graph.QueryOperation(inspectOp), inspectTarget)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("no %s for %s\n", inspectOp, inspectTarget)
		return nil
	}
	for _, name := range results {
		fmt.Println(name)
	}
	return nil
}
