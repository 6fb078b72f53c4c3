package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

var (
	askTopK int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask an ethical question",
	Long: `Retrieves the curated passages most similar to the question and
composes a templated answer: principles, options, trade-offs, a
recommendation, and citations.

High-risk questions (medical, legal, self-harm, violence) are refused
before any retrieval happens.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of passages to retrieve (default 3)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	opts := domain.AskOptions{TopK: defaultTopK(askTopK)}

	answer, err := askService.Ask(cmd.Context(), args[0], opts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			return errors.New("type a question first")
		case errors.Is(err, domain.ErrRiskyQuery):
			cmd.Println(domain.RefusalMessage)
			return nil
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}
	return outputAnswerText(cmd, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println("Recommendation")
	cmd.Printf("  %s\n", answer.Recommendation)
	cmd.Printf("  Confidence (rough): %s\n", answer.Confidence)
	cmd.Println()

	cmd.Println("Principles (retrieved)")
	for _, p := range answer.Principles {
		cmd.Printf("  %s\n", p)
	}
	cmd.Println()

	cmd.Println("Options")
	for _, o := range answer.Options {
		cmd.Printf("  - %s\n", o)
	}
	cmd.Println()

	cmd.Println("Trade-offs")
	for _, t := range answer.Tradeoffs {
		cmd.Printf("  %s\n", t)
	}
	cmd.Println()

	cmd.Println("Citations")
	for _, c := range answer.Citations {
		cmd.Printf("  - %s\n", c)
	}

	return nil
}
