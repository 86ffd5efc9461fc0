package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	stats := engine.Stats()

	if statsJSON {
		out := struct {
			TotalItems  int            `json:"total_items"`
			ItemsByType map[string]int `json:"items_by_type"`
			LastIndexed string         `json:"last_indexed,omitempty"`
			DurationMS  float64        `json:"index_duration_ms"`
		}{
			TotalItems:  stats.TotalItems,
			ItemsByType: make(map[string]int, len(stats.ItemsBySourceType)),
			DurationMS:  float64(stats.IndexDuration) / float64(time.Millisecond),
		}
		for t, n := range stats.ItemsBySourceType {
			out.ItemsByType[string(t)] = n
		}
		if !stats.LastIndexedAt.IsZero() {
			out.LastIndexed = stats.LastIndexedAt.Format(time.RFC3339)
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Index statistics")
	cmd.Println("================")
	cmd.Printf("Total items: %d\n", stats.TotalItems)
	if !stats.LastIndexedAt.IsZero() {
		cmd.Printf("Last indexed: %s (%s)\n",
			stats.LastIndexedAt.Format(time.RFC3339), stats.IndexDuration)
	} else {
		cmd.Println("Last indexed: never")
	}
	printTypeBreakdown(cmd, stats)
	return nil
}
