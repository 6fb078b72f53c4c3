package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

var (
	retrieveLimit int
	retrieveJSON  bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Retrieve similar passages without composing an answer",
	Long: `Scores the query against every corpus passage with TF-IDF cosine
similarity and prints the top matches. Useful for inspecting what the
ask pipeline would ground its answer on.

The same safety filter as ask applies: high-risk queries are refused
before any retrieval happens.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().IntVarP(&retrieveLimit, "limit", "n", 0, "maximum number of passages (default 3)")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	if guardService.IsRisky(args[0]) {
		cmd.Println(domain.RefusalMessage)
		return nil
	}

	k := defaultTopK(retrieveLimit)
	results, err := retrievalService.Retrieve(cmd.Context(), args[0], k)
	if err != nil {
		return fmt.Errorf("retrieve failed: %w", err)
	}

	if retrieveJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputRetrieveTable(cmd, results)
}

func outputRetrieveTable(cmd *cobra.Command, results []domain.RetrievedPassage) error {
	if len(results) == 0 {
		cmd.Println("No passages found.")
		return nil
	}

	cmd.Println("Passages:")
	cmd.Println()
	for i, r := range results {
		id := r.Passage.ID
		if id == "" {
			id = "(no id)"
		}
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, id, r.Score)
		if r.Passage.Source != "" {
			cmd.Printf("      Source: %s\n", r.Passage.Source)
		}
		cmd.Printf("      Themes: %s\n", r.Passage.ThemeLabel())
		cmd.Printf("      %s\n", snippet(r.Passage.Text, 200))
		cmd.Println()
	}

	return nil
}

// snippet truncates text for table display. Cuts on a rune boundary;
// passages carry multi-byte punctuation that a byte slice would split.
func snippet(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
