// Package cli implements the shici command surface. Each subcommand is
// an independent one-shot invocation: it wires the services it needs,
// runs, and the process exits. No state crosses command boundaries
// except the on-disk index and the config file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenxin-labs/shici-cli/internal/adapters/driven/config/file"
	"github.com/wenxin-labs/shici-cli/internal/adapters/driven/corpus"
	"github.com/wenxin-labs/shici-cli/internal/adapters/driven/engine/blugeindex"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
	"github.com/wenxin-labs/shici-cli/internal/core/services"
	"github.com/wenxin-labs/shici-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultIndexPath is where the index lives unless --index-path or the
// index_path config key says otherwise.
const defaultIndexPath = ".poem_index"

var (
	verboseFlag   bool
	configDirFlag string

	configStore   driven.ConfigStore
	corpusLoader  driven.CorpusLoader
	indexService  *services.IndexService
	searchService *services.SearchService
	corpusService *services.CorpusService
)

var rootCmd = &cobra.Command{
	Use:   "shici",
	Short: "Full-text search over a classical Chinese poem corpus",
	Long: `shici indexes a fixed corpus of classical poems (title, author,
dynasty, content) into a local full-text index and answers keyword
queries against it. It also lists, samples and aggregates the corpus
without touching the index.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.shici)")
}

// initServices wires the adapters and services for one invocation.
func initServices() error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	configStore = store

	if path := configStore.GetString("corpus_path"); path != "" {
		logger.Debug("Corpus override: %s", path)
		corpusLoader = corpus.NewFileLoader(path)
	} else {
		corpusLoader = corpus.NewEmbeddedLoader()
	}

	engine := blugeindex.NewEngine(blugeindex.NewTokenizer())

	indexService = services.NewIndexService(corpusLoader, engine)
	searchService = services.NewSearchService(engine)
	corpusService = services.NewCorpusService(corpusLoader)
	return nil
}

// resolveIndexPath applies precedence: explicit flag, then the
// index_path config key, then the built-in default.
func resolveIndexPath(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("index-path") {
		return flagValue
	}
	if path := configStore.GetString("index_path"); path != "" {
		return path
	}
	return flagValue
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
