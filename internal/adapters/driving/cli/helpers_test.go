package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/rote-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rote-cli/internal/core/services"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

const capitals = "1. Capital of France?\nParis\n2. Capital of Japan?\nTokyo\nJapan's capital.\n"

// firstRandomizer always draws index 0.
type firstRandomizer struct{}

func (firstRandomizer) IntN(int) int { return 0 }

type testServices struct {
	files    *memory.FileStore
	config   *memory.ConfigStore
	settings *services.SettingsService
	session  *services.StudySession
}

// setupTestServices installs in-memory services and returns a cleanup func.
func setupTestServices() (*testServices, func()) {
	files := memory.NewFileStore()
	files.WriteFile("capitals.txt", capitals)
	config := memory.NewConfigStore()

	ts := &testServices{
		files:    files,
		config:   config,
		settings: services.NewSettingsService(config),
		session:  services.NewStudySession(firstRandomizer{}),
	}
	SetServices(&Services{
		Deck:     services.NewDeckService(files, firstRandomizer{}),
		Session:  ts.session,
		Settings: ts.settings,
		Watch:    services.NewWatchService(files),
	})
	return ts, func() { SetServices(nil) }
}

// resetFlags restores command flag state that persists between executions.
func resetFlags() {
	verbose = false
	configDir = ""
	listJSON = false
	listYAML = false
	checkStrict = false
	drillLimit = 0
	studyWatch = true
	studyAltScreen = true
	for _, cmd := range []*cobra.Command{rootCmd, listCmd, checkCmd, drillCmd, studyCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}

// runRoot executes rootCmd with args and returns combined output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runRootWithInput(t, "", args...)
}

// runRootWithInput executes rootCmd reading stdin from input.
func runRootWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})
	return &buf
}
