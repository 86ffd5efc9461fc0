// Package cli wires the cobra command tree for the kanz binary.
// Commands talk to the knowledge engine through package-level service
// variables set by initServices, which lets tests inject mocks.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanzlabs/kanz/internal/adapters/driven/config/file"
	"github.com/kanzlabs/kanz/internal/adapters/driven/db"
	snapshotfile "github.com/kanzlabs/kanz/internal/adapters/driven/snapshot/file"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
	"github.com/kanzlabs/kanz/internal/core/ports/driving"
	"github.com/kanzlabs/kanz/internal/core/services"
	"github.com/kanzlabs/kanz/internal/logger"
	"github.com/kanzlabs/kanz/internal/sources/docs"
	"github.com/kanzlabs/kanz/internal/sources/help"
	"github.com/kanzlabs/kanz/internal/sources/modules"
	"github.com/kanzlabs/kanz/internal/sources/schema"
)

// version is set by Execute from the main package.
var version = "dev"

// Services the commands run against. Populated by initServices on
// first use; tests replace them directly.
var (
	engine      driving.KnowledgeEngine
	indexer     *services.Indexer
	configStore driven.ConfigStore
	docsSource  *docs.Source
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kanz",
	Short: "Local knowledge index and search",
	Long: `Kanz indexes local knowledge sources (documentation, database schema,
application modules, built-in help) into an in-memory inverted index
and answers ranked searches, term suggestions and prompt-context
queries, fully offline.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the production services and runs the root command.
// v is the build version stamp. Tests bypass this and drive rootCmd
// directly against injected services.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	if engine == nil {
		if err := initServices(context.Background()); err != nil {
			return err
		}
	}
	return rootCmd.Execute()
}

// initServices builds the production service graph: config store,
// snapshot store, indexer with its sources, and the engine.
func initServices(ctx context.Context) error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	snapshotPath := ""
	if dataDir := store.GetString("data_dir"); dataDir != "" {
		snapshotPath = filepath.Join(dataDir, "index.json")
	}
	snapshots, err := snapshotfile.NewSnapshotStore(snapshotPath)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	indexer = services.NewIndexer(snapshots)
	registerSources(ctx, indexer, store)

	eng := services.NewEngine(indexer)
	if err := eng.Initialize(ctx, false); err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	engine = eng
	return nil
}

// registerSources attaches the built-in and configured sources.
// A source that cannot be wired (for example an unreachable database)
// is logged and left out; the rest still index.
func registerSources(ctx context.Context, idx *services.Indexer, cfg driven.ConfigStore) {
	idx.AddSource(modules.New("modules", nil))
	idx.AddSource(help.New("help", nil))

	if path := cfg.GetString("docs.path"); path != "" {
		docsSource = docs.New("docs", path)
		idx.AddSource(docsSource)
	}

	if dbPath := cfg.GetString("schema.db_path"); dbPath != "" {
		schemaName := cfg.GetString("schema.name")
		if schemaName == "" {
			schemaName = "public"
		}
		pool, err := db.OpenSQLite(ctx, dbPath)
		if err != nil {
			logger.Warn("Schema database unavailable, source skipped: %v", err)
		} else {
			idx.AddSource(schema.New("schema", schemaName, db.Querier(pool)))
		}
	}

	for id, path := range configuredDocSources(cfg) {
		idx.AddSource(docs.New(id, path))
	}
}

// configuredDocSources reads user-added document sources from config
// keys of the form source.<id>.type / source.<id>.path.
func configuredDocSources(cfg driven.ConfigStore) map[string]string {
	out := make(map[string]string)
	for _, key := range cfg.Keys() {
		if !strings.HasPrefix(key, "source.") || !strings.HasSuffix(key, ".type") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(key, "source."), ".type")
		if cfg.GetString(key) != "docs" {
			continue
		}
		if path := cfg.GetString("source." + id + ".path"); path != "" {
			out[id] = path
		}
	}
	return out
}
