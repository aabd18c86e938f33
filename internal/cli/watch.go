package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/config"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/watcher"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch Go sources and regenerate diagrams on change",
	Long: `Watch monitors a directory tree for Go source changes and regenerates
the Mermaid diagram for each changed file, debounced so editor save bursts
collapse into one regeneration pass.

Example:
  go2uml watch ./internal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable non-error output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Stopping watch...")
		cancel()
	}()

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

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	w, err := watcher.New([]string{dir}, []string{".go"}, debounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	err = w.Start(ctx, func(changed []string) {
		for _, path := range changed {
			if _, statErr := os.Stat(path); statErr != nil {
				continue // deleted; its diagram goes stale, not removed
			}
			if genErr := generateFileQuiet(ctx, eng, path); genErr != nil {
				log.Printf("Warning: %s: %v", path, genErr)
				continue
			}
			if !quietFlag {
				fmt.Printf("%s -> %s\n", path, diagramPath(path))
			}
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	if !quietFlag {
		fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", dir)
	}

	<-ctx.Done()
	return nil
}
