package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	contextItems  int
	contextLength int
)

var contextCmd = &cobra.Command{
	Use:   "context [query]",
	Short: "Assemble prompt context for a question",
	Long: `Builds the Arabic-headed context block that would be handed to a
language model for the given question, bounded by the item and length
limits. Prints nothing if no indexed item is relevant.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVar(&contextItems, "items", 0, "maximum context sections (default 5)")
	contextCmd.Flags().IntVar(&contextLength, "length", 0, "maximum context length in characters (default 4000)")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	if engine == nil {
		return errors.New("knowledge engine not configured")
	}

	items := contextItems
	length := contextLength
	// Flags win; config keys fill in when a flag is left at its default.
	if configStore != nil {
		if !cmd.Flags().Changed("items") {
			if v := configStore.GetInt("context.max_items"); v > 0 {
				items = v
			}
		}
		if !cmd.Flags().Changed("length") {
			if v := configStore.GetInt("context.max_length"); v > 0 {
				length = v
			}
		}
	}

	text := engine.ContextForPrompt(cmd.Context(), args[0], items, length)
	if text == "" {
		cmd.Println("No relevant context found.")
		return nil
	}

	cmd.Print(text)
	return nil
}
