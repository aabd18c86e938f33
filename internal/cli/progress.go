package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter shows batch generation progress with a progress bar.
type ProgressReporter struct {
	quiet     bool
	bar       *progressbar.ProgressBar
	startTime time.Time
}

// NewProgressReporter creates a progress reporter. quiet suppresses all
// output.
func NewProgressReporter(quiet bool) *ProgressReporter {
	return &ProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (p *ProgressReporter) OnBatchStart(totalFiles int) {
	if p.quiet {
		return
	}

	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Generating diagrams"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *ProgressReporter) OnFileProcessed(fileName string) {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Add(1)
}

func (p *ProgressReporter) OnBatchComplete(generated, total int) {
	if p.quiet {
		return
	}
	fmt.Printf("Generated %d of %d diagrams in %s\n", generated, total, time.Since(p.startTime).Round(time.Millisecond))
}
