// Package cli provides the cobra command tree for Vichara.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/vedanta-labs/vichara-cli/internal/adapters/driven/config/file"
	"github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/jsonl"
	corpussqlite "github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/sqlite"
	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
	"github.com/vedanta-labs/vichara-cli/internal/core/services"
	"github.com/vedanta-labs/vichara-cli/internal/index/tfidf"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// defaultCorpusPath is used when neither the --corpus flag nor the
// corpus.path config key is set.
const defaultCorpusPath = "data/corpus.jsonl"

// version is the CLI version, overridable at build time.
var version = "0.1.0"

// Injected services. Populated by ensureServices on first use;
// tests replace them directly.
var (
	askService       driving.AskService
	retrievalService driving.RetrievalService
	guardService     driving.GuardService
	corpusStore      driven.CorpusStore
	configStore      driven.ConfigStore
)

// Persistent flag values.
var (
	flagVerbose   bool
	flagCorpus    string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "vichara",
	Short: "Retrieval-backed counsel for ethical questions",
	Long: `Vichara retrieves curated passages similar to an ethical question
and composes a transparent, templated answer: principles, options,
trade-offs, a recommendation, and citations.

The corpus is a local JSONL file (or an imported SQLite copy); there
are no external services and no learned reasoning.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose pipeline logging")
	rootCmd.PersistentFlags().StringVar(&flagCorpus, "corpus", "", "path to the JSONL corpus file")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.vichara)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion overrides the reported version (set from main via ldflags).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ensureServices wires the core pipeline on first use: config, corpus
// store, similarity index, then the services. Commands that do not
// touch the corpus (version) never pay the startup cost.
func ensureServices(cmd *cobra.Command) error {
	if askService != nil {
		return nil
	}

	var err error
	configStore, err = configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	corpusStore, err = openCorpusStore()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	ctx := cmd.Context()
	passages, err := corpusStore.All(ctx)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}
	if len(passages) == 0 {
		return fmt.Errorf("corpus has no usable passages: %w", domain.ErrEmptyCorpus)
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}
	index, err := tfidf.New(texts)
	if err != nil {
		return fmt.Errorf("building similarity index: %w", err)
	}

	retrieval, err := services.NewRetrievalService(passages, index)
	if err != nil {
		return fmt.Errorf("creating retrieval service: %w", err)
	}

	guard := services.NewGuardService()
	guardService = guard
	retrievalService = retrieval
	askService = services.NewAskService(guard, retrieval, services.NewComposerService())

	logger.Info("pipeline ready: %d passages indexed", len(passages))
	return nil
}

// openCorpusStore picks the corpus backend. The --corpus flag forces
// the JSONL file; otherwise the configured backend decides.
func openCorpusStore() (driven.CorpusStore, error) {
	if flagCorpus != "" {
		return jsonl.Open(flagCorpus)
	}

	if configStore.GetString(configfile.KeyCorpusBackend) == "sqlite" {
		return corpussqlite.NewStore(dataDir())
	}

	path := configStore.GetString(configfile.KeyCorpusPath)
	if path == "" {
		path = defaultCorpusPath
	}
	return jsonl.Open(path)
}

// dataDir resolves the SQLite data directory from the config dir flag.
func dataDir() string {
	if flagConfigDir == "" {
		return "" // store falls back to ~/.vichara/data
	}
	return flagConfigDir + "/data"
}

// defaultTopK resolves the retrieval count: flag value if positive,
// then the config key, then the built-in default.
func defaultTopK(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if configStore != nil {
		if k := configStore.GetInt(configfile.KeyTopK); k > 0 {
			return k
		}
	}
	return domain.DefaultTopK
}
