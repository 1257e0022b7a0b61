package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

var drillLimit int

var drillCmd = &cobra.Command{
	Use:   "drill [file]",
	Short: "Study in the plain terminal, one key press at a time",
	Long: `Prints a random question and waits for a key press, then prints the
answer and waits again before moving on. Press q to stop.

When input is not a terminal each line of input counts as one key press.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().IntVarP(&drillLimit, "limit", "n", 0, "stop after this many questions (0 = no limit)")
	rootCmd.AddCommand(drillCmd)
}

func runDrill(cmd *cobra.Command, args []string) error {
	if deckService == nil || studySession == nil {
		return errors.New("deck service not configured")
	}

	deck, err := loadDeck(cmd, resolveStudyFile(args))
	if err != nil {
		return err
	}

	keys, restore, raw, err := newKeySource(cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer restore()

	out := cmd.OutOrStdout()
	if raw {
		out = &crlfWriter{w: out}
	}
	return drill(out, keys, studySession, deck, drillLimit)
}

// drill runs the reveal/advance loop until quit, end of input or limit.
func drill(out io.Writer, keys keySource, session driving.StudySession, deck *domain.Deck, limit int) error {
	if err := session.Start(deck); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d questions. Press a key to reveal the answer, q to quit.\n",
		filepath.Base(deck.Path), deck.Len())

	reviewed := 0
	for {
		entry, _ := session.Current()
		fmt.Fprintf(out, "\n%s\n", entry.Question)

		quit, err := waitKey(keys)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		if _, err := session.Interact(); err != nil {
			return err
		}
		for _, line := range entry.AnswerLines() {
			fmt.Fprintf(out, "  %s\n", line)
		}
		reviewed++

		if limit > 0 && reviewed >= limit {
			break
		}
		quit, err = waitKey(keys)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		if _, err := session.Interact(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nRevealed %d answers.\n", reviewed)
	return nil
}

// waitKey blocks for one key press. End of input counts as quit.
func waitKey(keys keySource) (bool, error) {
	key, err := keys.Next()
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}
	return isQuitKey(key), nil
}

func isQuitKey(key string) bool {
	switch key {
	case "q", "Q", "\x03", "\x04":
		return true
	default:
		return false
	}
}

// keySource yields key presses.
type keySource interface {
	Next() (string, error)
}

// rawKeys reads single key presses from a terminal in raw mode.
type rawKeys struct {
	r io.Reader
}

func (k *rawKeys) Next() (string, error) {
	buf := make([]byte, 16)
	n, err := k.r.Read(buf)
	if n == 0 && err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// lineKeys treats each line of input as one key press.
type lineKeys struct {
	r *bufio.Reader
}

func (k *lineKeys) Next() (string, error) {
	line, err := k.r.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// newKeySource puts a terminal into raw mode, or falls back to line input.
// The returned func restores the terminal.
func newKeySource(in io.Reader) (keySource, func(), bool, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, nil, false, fmt.Errorf("enter raw mode: %w", err)
		}
		return &rawKeys{r: f}, func() { _ = term.Restore(fd, state) }, true, nil
	}
	return &lineKeys{r: bufio.NewReader(in)}, func() {}, false, nil
}

// crlfWriter translates "\n" to "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
