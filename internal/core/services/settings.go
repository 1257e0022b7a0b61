package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStudyFile   = "study.file"
	keyStudyWatch  = "study.watch"
	keyUIAltScreen = "ui.alt_screen"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Study: domain.StudySettings{
			File:  s.getString(keyStudyFile, defaults.Study.File),
			Watch: s.getBool(keyStudyWatch, defaults.Study.Watch),
		},
		UI: domain.UISettings{
			AltScreen: s.getBool(keyUIAltScreen, defaults.UI.AltScreen),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyStudyFile, settings.Study.File); err != nil {
		return fmt.Errorf("save study file: %w", err)
	}
	if err := s.configStore.Set(keyStudyWatch, settings.Study.Watch); err != nil {
		return fmt.Errorf("save study watch: %w", err)
	}
	if err := s.configStore.Set(keyUIAltScreen, settings.UI.AltScreen); err != nil {
		return fmt.Errorf("save ui alt_screen: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetStudyFile sets the default study file.
func (s *SettingsService) SetStudyFile(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Study.File = strings.TrimSpace(path)
	return s.Save(settings)
}

// SetWatch enables or disables reloading on file changes.
func (s *SettingsService) SetWatch(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Study.Watch = enabled
	return s.Save(settings)
}

// SetAltScreen enables or disables the alternate screen for the TUI.
func (s *SettingsService) SetAltScreen(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.UI.AltScreen = enabled
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
