package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [source-id]",
	Short: "Rebuild the knowledge index",
	Long: `Extracts items from the registered sources and rebuilds the index.
If a source ID is provided, only that source is re-indexed; items from
other sources are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	var (
		stats domain.IndexStats
		err   error
	)
	if len(args) > 0 {
		cmd.Printf("Indexing source: %s...\n", args[0])
		stats, err = engine.ReindexSource(cmd.Context(), args[0])
	} else {
		cmd.Println("Indexing all sources...")
		stats, err = engine.Reindex(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %d items in %s\n", stats.TotalItems, stats.IndexDuration)
	printTypeBreakdown(cmd, stats)
	return nil
}

func printTypeBreakdown(cmd *cobra.Command, stats domain.IndexStats) {
	types := make([]string, 0, len(stats.ItemsBySourceType))
	for t := range stats.ItemsBySourceType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		cmd.Printf("  %-16s %d\n", t, stats.ItemsBySourceType[domain.SourceType(t)])
	}
}
