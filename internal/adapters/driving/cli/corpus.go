package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/jsonl"
	corpussqlite "github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/sqlite"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Corpus management commands",
	Long:  `Commands for inspecting and importing the passage corpus.`,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded passages",
	RunE:  runCorpusList,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [jsonl-file]",
	Short: "Import a JSONL corpus into the SQLite backend",
	Long: `Reads a JSONL corpus file and replaces the contents of the local
SQLite corpus database with it, preserving passage order. Set
corpus.backend = "sqlite" in the config to serve queries from the
imported copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

func init() {
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusImportCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	passages, err := corpusStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	cmd.Printf("Corpus: %d passages\n\n", len(passages))
	for i, p := range passages {
		id := p.ID
		if id == "" {
			id = "(no id)"
		}
		cmd.Printf("  [%d] %s — %s\n", i+1, id, p.Source)
		cmd.Printf("      Themes: %s\n", p.ThemeLabel())
		cmd.Printf("      %s\n", snippet(p.Text, 120))
	}

	return nil
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	src, err := jsonl.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening corpus file: %w", err)
	}

	passages, err := src.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading corpus file: %w", err)
	}
	if len(passages) == 0 {
		return fmt.Errorf("%s contains no usable passages", args[0])
	}

	store, err := corpussqlite.NewStore(dataDir())
	if err != nil {
		return fmt.Errorf("opening corpus database: %w", err)
	}
	defer store.Close()

	if err := store.Replace(cmd.Context(), passages); err != nil {
		return fmt.Errorf("importing corpus: %w", err)
	}

	cmd.Printf("Imported %d passages into %s", len(passages), store.Path())
	if skipped := src.Skipped(); skipped > 0 {
		cmd.Printf(" (%d malformed records skipped)", skipped)
	}
	cmd.Println()

	return nil
}
