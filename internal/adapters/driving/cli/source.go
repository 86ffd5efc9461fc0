package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kanzlabs/kanz/internal/sources/docs"
)

var sourceAddPath string

// builtinSourceIDs are registered by initServices and cannot be
// removed through the CLI.
var builtinSourceIDs = map[string]bool{
	"modules": true,
	"help":    true,
	"docs":    true,
	"schema":  true,
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage knowledge sources",
	Long: `List, add and remove the sources feeding the knowledge index.
The built-in module and help sources are always present; document
sources can be added per directory tree.`,
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sources",
	RunE:  runSourceList,
}

var sourceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document source",
	Long: `Registers a new document source over a directory tree and persists
it to the configuration, so it survives restarts. Run 'kanz index'
afterwards to pick up its content.`,
	RunE: runSourceAdd,
}

var sourceRemoveCmd = &cobra.Command{
	Use:   "remove [source-id]",
	Short: "Remove a source",
	Long: `Unregisters a source and drops its items from the index. Built-in
sources cannot be removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSourceRemove,
}

func init() {
	sourceAddCmd.Flags().StringVar(&sourceAddPath, "path", "", "directory tree to index (required)")
	sourceAddCmd.MarkFlagRequired("path") //nolint:errcheck

	sourceCmd.AddCommand(sourceListCmd)
	sourceCmd.AddCommand(sourceAddCmd)
	sourceCmd.AddCommand(sourceRemoveCmd)
	rootCmd.AddCommand(sourceCmd)
}

func runSourceList(cmd *cobra.Command, _ []string) error {
	if indexer == nil {
		return errors.New("indexer not configured")
	}

	sources := indexer.Sources()
	if len(sources) == 0 {
		cmd.Println("No sources registered.")
		return nil
	}

	cmd.Println("Configured sources:")
	for _, src := range sources {
		status := "enabled"
		if !src.Enabled() {
			status = "disabled"
		}
		cmd.Printf("  %-20s %-16s %s\n", src.ID(), src.Type(), status)
	}
	return nil
}

func runSourceAdd(cmd *cobra.Command, _ []string) error {
	if indexer == nil {
		return errors.New("indexer not configured")
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}

	id := uuid.NewString()[:8]
	if err := configStore.Set("source."+id+".type", "docs"); err != nil {
		return fmt.Errorf("persisting source: %w", err)
	}
	if err := configStore.Set("source."+id+".path", sourceAddPath); err != nil {
		return fmt.Errorf("persisting source: %w", err)
	}

	indexer.AddSource(docs.New(id, sourceAddPath))

	cmd.Printf("Added source: %s (%s)\n", id, sourceAddPath)
	cmd.Println("Run 'kanz index' to index its content.")
	return nil
}

func runSourceRemove(cmd *cobra.Command, args []string) error {
	if indexer == nil {
		return errors.New("indexer not configured")
	}

	id := args[0]
	if builtinSourceIDs[id] {
		return fmt.Errorf("source %q is built in and cannot be removed", id)
	}
	if err := indexer.RemoveSource(id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	if configStore != nil {
		configStore.Unset("source." + id + ".type") //nolint:errcheck
		configStore.Unset("source." + id + ".path") //nolint:errcheck
	}

	cmd.Printf("Removed source: %s\n", id)
	return nil
}
