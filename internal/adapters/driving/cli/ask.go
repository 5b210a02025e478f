package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

var (
	askLimit int
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about studying at Metropolia",
	Long: `Matches your question against the topic registry and prints the
most relevant topics. When an AI provider is configured, also prints a
short generated answer grounded in those topics.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", 0, "maximum number of matched topics (default 3)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	if askLimit > 0 {
		if s, ok := askService.(interface{ SetTopK(int) }); ok {
			s.SetTopK(askLimit)
		}
	}

	result, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) {
			return errors.New("question must not be empty")
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}
	return outputAskText(cmd, result)
}

func outputAskJSON(cmd *cobra.Command, result domain.AskResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, result domain.AskResult) error {
	if len(result.Topics) == 0 {
		cmd.Println("No matching topics found. Try different words, or run 'helper topics' to browse.")
		return nil
	}

	cmd.Println("These topics might help:")
	cmd.Println()
	for i, topic := range result.Topics {
		cmd.Printf("  [%d] %s (%s)\n", i+1, topic.Title, topic.ID)
		cmd.Printf("      %s\n", topic.ShortDescription)
		cmd.Println()
	}

	if result.Answered {
		cmd.Println("Answer:")
		cmd.Println()
		cmd.Printf("  %s\n", result.Answer)
	}

	return nil
}
