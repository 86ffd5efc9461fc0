package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var relatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related [item-id]",
	Short: "Find items related to an indexed item",
	Long: `Searches the index with the given item's title and keywords and
returns the closest other items. The item itself is never listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "n", 5, "maximum number of related items")
	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	results := engine.Related(args[0], relatedLimit)
	return outputSearchTable(cmd, results)
}
