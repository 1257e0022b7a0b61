package driving

import "github.com/custodia-labs/rote-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStudyFile sets the default study file.
	SetStudyFile(path string) error

	// SetWatch enables or disables reloading on file changes.
	SetWatch(enabled bool) error

	// SetAltScreen enables or disables the alternate screen for the TUI.
	SetAltScreen(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
