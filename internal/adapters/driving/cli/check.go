package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a study file",
	Long: `Parses the study file and reports how many questions it contains
and which questions were skipped because no answer followed them.

Exits with an error when the file is missing, is not UTF-8 or contains
no usable questions. With --strict, skipped questions are an error too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when any question has no answer")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if deckService == nil {
		return errors.New("deck service not configured")
	}

	deck, err := loadDeck(cmd, resolveStudyFile(args))
	if err != nil {
		return err
	}

	cmd.Printf("%s: %d questions\n", deck.Path, deck.Len())
	if len(deck.Dropped) == 0 {
		cmd.Println("All questions have answers.")
		return nil
	}

	cmd.Printf("%d skipped (no answer):\n", len(deck.Dropped))
	for _, d := range deck.Dropped {
		cmd.Printf("  line %d: %s\n", d.Line, d.Question)
	}

	if checkStrict {
		return fmt.Errorf("%d questions have no answer", len(deck.Dropped))
	}
	return nil
}
