package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse the topic registry",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics",
	Args:  cobra.NoArgs,
	RunE:  runTopicsList,
}

var topicsShowCmd = &cobra.Command{
	Use:   "show [topic-id]",
	Short: "Show a topic in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicsShow,
}

func init() {
	topicsCmd.PersistentFlags().BoolVar(&topicsJSON, "json", false, "output as JSON")
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsShowCmd)
	rootCmd.AddCommand(topicsCmd)
}

func runTopicsList(cmd *cobra.Command, _ []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	topics := askService.Registry().Topics()

	if topicsJSON {
		data, err := json.MarshalIndent(topics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal topics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Topics:")
	cmd.Println()
	for _, topic := range topics {
		cmd.Printf("  %-24s %s\n", topic.ID, topic.Title)
		cmd.Printf("  %-24s %s\n", "", topic.ShortDescription)
		cmd.Println()
	}
	return nil
}

func runTopicsShow(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	topic, err := askService.Registry().TopicByID(args[0])
	if err != nil {
		return fmt.Errorf("topic %q: %w", args[0], err)
	}

	if topicsJSON {
		data, err := json.MarshalIndent(topic, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal topic: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printTopic(cmd, topic)
	return nil
}

func printTopic(cmd *cobra.Command, topic domain.Topic) {
	cmd.Printf("%s (%s)\n", topic.Title, topic.ID)
	cmd.Println()
	cmd.Println(topic.ShortDescription)
	cmd.Println()
	cmd.Println(topic.Details)
	if len(topic.Links) > 0 {
		cmd.Println()
		cmd.Println("Links:")
		for _, link := range topic.Links {
			cmd.Printf("  %s: %s\n", link.Label, link.URL)
		}
	}
}
