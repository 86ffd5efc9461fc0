package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Complete a partial search term",
	Long: `Returns indexed vocabulary terms starting with the given prefix.
The prefix must be at least two characters long.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 10, "maximum number of suggestions")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	terms := engine.Suggest(args[0], suggestLimit)
	if len(terms) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	for _, term := range terms {
		cmd.Println(term)
	}
	return nil
}
