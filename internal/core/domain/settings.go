package domain

import (
	"fmt"
	"strings"
)

// DefaultStudyFile is the study file used when none is configured.
const DefaultStudyFile = "questions.txt"

// StudySettings configures which file is studied and how it is loaded.
type StudySettings struct {
	// File is the study file opened when no path is given.
	File string

	// Watch reloads the study file when it changes on disk.
	Watch bool
}

// UISettings configures the terminal user interface.
type UISettings struct {
	// AltScreen runs the TUI in the terminal's alternate screen buffer.
	AltScreen bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Study StudySettings
	UI    UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Study: StudySettings{
			File:  DefaultStudyFile,
			Watch: true,
		},
		UI: UISettings{
			AltScreen: true,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if strings.TrimSpace(s.Study.File) == "" {
		return fmt.Errorf("%w: study file must not be empty", ErrInvalidInput)
	}
	return nil
}
