package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// watchDebounce is how long to wait after the last filesystem event
// before re-indexing, so a burst of saves triggers one run.
const watchDebounce = 2 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the documentation tree and re-index on change",
	Long: `Watches the configured documentation directory and re-indexes the
document source whenever files change. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}
	if docsSource == nil {
		return errors.New("no documentation source configured; set docs.path first")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes, err := docsSource.Watch(ctx)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", docsSource.RootPath())

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				fire = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-fire:
			stats, err := engine.ReindexSource(ctx, docsSource.ID())
			if err != nil {
				cmd.Printf("Re-index failed: %v\n", err)
			} else {
				cmd.Printf("Re-indexed: %d items total\n", stats.TotalItems)
			}
		}
	}
}
