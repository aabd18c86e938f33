package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/config"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/engine"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/files"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/render"
)

var (
	outputFlag string
	renderFlag bool
	quietFlag  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a class diagram from Go source",
	Long: `Generate reads Go source and emits Mermaid class-diagram text.

The path may be a single .go file, a directory (every discovered source
file yields a sibling .mmd diagram), or "-" to read source from stdin and
write the diagram to stdout. Each file is an independent extraction run;
types are not resolved across files.

Examples:
  # stdin to stdout
  cat types.go | go2uml generate -

  # single file, diagram next to it
  go2uml generate pkg/types.go

  # whole directory with progress bar
  go2uml generate ./internal

  # also render an SVG through the configured Kroki endpoint
  go2uml generate pkg/types.go --render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file for the diagram text (single input only)")
	generateCmd.Flags().BoolVar(&renderFlag, "render", false, "Render the diagram to SVG via the configured renderer")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
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

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	if path == "-" {
		return generateStdin(ctx, eng)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		if outputFlag != "" {
			return fmt.Errorf("--output is only valid for a single input file")
		}
		return generateDir(ctx, eng, cfg, path)
	}

	return generateFile(ctx, eng, path, outputFlag)
}

// newEngine builds the engine with the configured renderer behind a result
// cache.
func newEngine(cfg *config.Config) (*engine.Engine, func(), error) {
	kroki := render.NewKrokiRenderer(cfg.Renderer.Endpoint)
	cached, err := render.NewCachedRenderer(kroki, cfg.Renderer.CacheSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return engine.New(engine.WithRenderer(cached)), cached.Close, nil
}

// generateStdin reads source from stdin and writes the diagram to stdout
// (or --output).
func generateStdin(ctx context.Context, eng *engine.Engine) error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	diagram, err := eng.Diagram(string(source))
	if err != nil {
		return err
	}

	if renderFlag {
		out := outputFlag
		if out == "" {
			out = "diagram.svg"
		}
		return renderTo(ctx, eng, string(source), svgPath(out))
	}

	if outputFlag != "" {
		return os.WriteFile(outputFlag, []byte(diagram), 0644)
	}

	fmt.Print(diagram)
	return nil
}

// generateFile generates the diagram for one source file. The diagram lands
// next to the source as <name>.mmd unless an explicit output is given.
func generateFile(ctx context.Context, eng *engine.Engine, path, output string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	diagram, err := eng.Diagram(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if output == "" {
		output = diagramPath(path)
	}
	if err := os.WriteFile(output, []byte(diagram), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	if renderFlag {
		if err := renderTo(ctx, eng, string(source), svgPath(output)); err != nil {
			return err
		}
	}

	if !quietFlag {
		fmt.Printf("%s -> %s\n", path, output)
	}
	return nil
}

// generateDir discovers source files under dir and generates one diagram
// per file. Files with no type declarations are skipped with a warning
// rather than failing the whole batch.
func generateDir(ctx context.Context, eng *engine.Engine, cfg *config.Config, dir string) error {
	discovery, err := files.NewDiscovery(dir, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("failed to compile path patterns: %w", err)
	}

	sources, err := discovery.Discover()
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no source files matched under %s", dir)
	}

	progress := NewProgressReporter(quietFlag)
	progress.OnBatchStart(len(sources))

	generated := 0
	for _, path := range sources {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := generateFileQuiet(ctx, eng, path); err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
		} else {
			generated++
		}
		progress.OnFileProcessed(filepath.Base(path))
	}

	progress.OnBatchComplete(generated, len(sources))
	return nil
}

func generateFileQuiet(ctx context.Context, eng *engine.Engine, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	diagram, err := eng.Diagram(string(source))
	if err != nil {
		return err
	}

	output := diagramPath(path)
	if err := os.WriteFile(output, []byte(diagram), 0644); err != nil {
		return err
	}

	if renderFlag {
		return renderTo(ctx, eng, string(source), svgPath(output))
	}
	return nil
}

// renderTo renders source through the external renderer and writes the
// artifact to path.
func renderTo(ctx context.Context, eng *engine.Engine, source, path string) error {
	artifact, err := eng.Render(ctx, source)
	if err != nil {
		return err
	}
	if err := writeArtifact(path, artifact); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	if !quietFlag {
		fmt.Printf("rendered %s\n", path)
	}
	return nil
}

// diagramPath maps a source path to its diagram output path.
func diagramPath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".mmd"
}

// svgPath maps a diagram output path to its rendered artifact path.
func svgPath(diagram string) string {
	return strings.TrimSuffix(diagram, filepath.Ext(diagram)) + ".svg"
}
