package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the default study file and display options.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Set the default study file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFile,
}

var settingsWatchCmd = &cobra.Command{
	Use:   "watch <on|off>",
	Short: "Reload the study file when it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWatch,
}

var settingsAltScreenCmd = &cobra.Command{
	Use:   "altscreen <on|off>",
	Short: "Run the study view full-screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAltScreen,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsFileCmd)
	settingsCmd.AddCommand(settingsWatchCmd)
	settingsCmd.AddCommand(settingsAltScreenCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Study]")
	cmd.Printf("  File:  %s\n", settings.Study.File)
	cmd.Printf("  Watch: %s\n", onOff(settings.Study.Watch))
	cmd.Println()
	cmd.Println("[UI]")
	cmd.Printf("  Alt screen: %s\n", onOff(settings.UI.AltScreen))
	cmd.Println()
	cmd.Printf("Config: %s\n", settingsService.Path())
	return nil
}

func runSettingsFile(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetStudyFile(args[0]); err != nil {
		return fmt.Errorf("failed to set study file: %w", err)
	}
	cmd.Printf("Default study file set to %s\n", strings.TrimSpace(args[0]))
	return nil
}

func runSettingsWatch(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	enabled, err := parseToggle(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetWatch(enabled); err != nil {
		return fmt.Errorf("failed to set watch: %w", err)
	}
	cmd.Printf("Watch %s\n", onOff(enabled))
	return nil
}

func runSettingsAltScreen(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	enabled, err := parseToggle(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetAltScreen(enabled); err != nil {
		return fmt.Errorf("failed to set alt screen: %w", err)
	}
	cmd.Printf("Alt screen %s\n", onOff(enabled))
	return nil
}

func parseToggle(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", input)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
