package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "Print the questions and answers in a study file",
	Long: `Parses the study file and prints every question with its answer,
in file order. Questions without an answer are left out.

Without a file argument the default study file from settings is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "output as YAML")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

// listing is the machine-readable form of a deck.
type listing struct {
	File    string                `json:"file" yaml:"file"`
	Entries []domain.Entry        `json:"entries" yaml:"entries"`
	Dropped []domain.DroppedEntry `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	deck, err := loadDeck(cmd, resolveStudyFile(args))
	if err != nil {
		return err
	}

	out := listing{File: deck.Path, Entries: deck.Entries, Dropped: deck.Dropped}
	switch {
	case listJSON:
		return outputListJSON(cmd, out)
	case listYAML:
		return outputListYAML(cmd, out)
	default:
		outputListText(cmd, deck)
		return nil
	}
}

func outputListJSON(cmd *cobra.Command, out listing) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListYAML(cmd *cobra.Command, out listing) error {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	cmd.Print(b.String())
	return nil
}

func outputListText(cmd *cobra.Command, deck *domain.Deck) {
	for i, entry := range deck.Entries {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(entry.Question)
		for _, line := range entry.AnswerLines() {
			cmd.Printf("    %s\n", line)
		}
	}
}
