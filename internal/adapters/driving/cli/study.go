package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

var (
	studyWatch     bool
	studyAltScreen bool
)

var studyCmd = &cobra.Command{
	Use:   "study [file]",
	Short: "Study a question file in the interactive terminal UI",
	Long: `Opens the study file in the terminal UI and shows one random question
at a time.

Controls:
  space/enter - Reveal the answer, then show the next question
  click       - Same as space
  r           - Reload the file
  o           - Open another file
  ?           - Help
  q           - Quit

Without a file argument the default study file from settings is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStudy,
}

func init() {
	studyCmd.Flags().BoolVar(&studyWatch, "watch", true, "reload when the file changes (overrides settings)")
	studyCmd.Flags().BoolVar(&studyAltScreen, "alt-screen", true, "use the full terminal screen (overrides settings)")
	rootCmd.AddCommand(studyCmd)
}

func runStudy(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if deckService == nil || studySession == nil {
		return errors.New("deck service not configured")
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		if current, err := settingsService.Get(); err == nil {
			settings = *current
		}
	}
	watch := settings.Study.Watch
	if cmd.Flags().Changed("watch") {
		watch = studyWatch
	}
	altScreen := settings.UI.AltScreen
	if cmd.Flags().Changed("alt-screen") {
		altScreen = studyAltScreen
	}

	ports := tui.NewPorts(deckService, studySession)
	ports.Settings = settingsService
	ports.Watch = watchService
	app, err := tui.NewApp(ports, tui.Options{File: resolveStudyFile(args), Watch: watch})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	defer app.Close()

	// log lines would corrupt the screen; print them after exit instead
	var logs bytes.Buffer
	previous := logger.Output()
	logger.SetOutput(&logs)
	defer func() {
		logger.SetOutput(previous)
		if logs.Len() > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), logs.String())
		}
	}()

	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithMouseCellMotion(),
	}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
