package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

var (
	searchLimit    int
	searchTypes    []string
	searchMinScore float64
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge index",
	Long: `Runs a ranked keyword search across all indexed items.
Arabic and English queries are both supported; titles weigh more than
keywords, keywords more than body text.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringSliceVar(&searchTypes, "type", nil, "restrict to source types (document, database_schema, module, help)")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "drop results scoring below this threshold")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	limit := searchLimit
	minScore := searchMinScore
	// Flags win; config keys fill in when a flag is left at its default.
	if configStore != nil {
		if !cmd.Flags().Changed("limit") {
			if v := configStore.GetInt("search.max_results"); v > 0 {
				limit = v
			}
		}
		if !cmd.Flags().Changed("min-score") {
			if v := configStore.GetFloat("search.min_score"); v > 0 {
				minScore = v
			}
		}
	}

	opts := domain.SearchOptions{
		MaxResults:   limit,
		MinScore:     minScore,
		WithSnippets: true,
	}
	for _, t := range searchTypes {
		opts.SourceTypes = append(opts.SourceTypes, domain.SourceType(t))
	}

	results := engine.Search(cmd.Context(), args[0], opts)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Item.Title
		if title == "" {
			title = results[i].Item.ID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)
		cmd.Printf("      Type: %s\n", results[i].Item.SourceType)
		if results[i].Snippet != "" {
			cmd.Printf("      %s\n", results[i].Snippet)
		}
		cmd.Println()
	}

	return nil
}
