// Package cli provides the cobra command tree for rote.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services configured by SetServices or the bootstrap function.
var (
	deckService     driving.DeckService
	studySession    driving.StudySession
	settingsService driving.SettingsService
	watchService    driving.WatchService
)

// Services groups the driving ports used by the commands.
type Services struct {
	Deck     driving.DeckService
	Session  driving.StudySession
	Settings driving.SettingsService
	Watch    driving.WatchService
}

// Options are the global flag values passed to the bootstrap function.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap builds services once global flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "rote",
	Short: "Drill yourself on a plain-text question file",
	Long: `rote shows the questions of a study file one at a time in random order.
The first key press reveals the answer, the next one moves on.

A study file is plain text. A line starting with a number and a dot
begins a question; the lines after it are the answer:

  1. Capital of France?
  Paris
  2. Capital of Japan?
  Tokyo`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.rote)")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap sets the function that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	deckService = s.Deck
	studySession = s.Session
	settingsService = s.Settings
	watchService = s.Watch
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}
	services, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// resolveStudyFile picks the file argument, falling back to the saved default.
func resolveStudyFile(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Study.File != "" {
			return settings.Study.File
		}
	}
	return domain.DefaultStudyFile
}

// loadDeck loads path and turns load errors into user-facing messages.
func loadDeck(cmd *cobra.Command, path string) (*domain.Deck, error) {
	if deckService == nil {
		return nil, errors.New("deck service not configured")
	}
	deck, err := deckService.Load(cmd.Context(), path)
	if err != nil {
		return nil, fmt.Errorf("%s (%w)", domain.Describe(err), err)
	}
	return deck, nil
}
