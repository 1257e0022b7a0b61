// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewStudy shows the current question and answer.
	ViewStudy
	// ViewOpenFile prompts for a study file path.
	ViewOpenFile
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewStudy:
		return "study"
	case ViewOpenFile:
		return "open_file"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// OpenFileRequested asks the app to load a study file.
type OpenFileRequested struct {
	Path string
}

// ReloadRequested asks the app to re-read the current study file.
type ReloadRequested struct{}

// DeckLoaded carries the result of loading or reloading a study file.
type DeckLoaded struct {
	Deck     *domain.Deck
	Reloaded bool
	Err      error
}

// FileChanged is delivered by a file watch. WatchID identifies the watch
// that produced it so events from a replaced watch can be ignored.
type FileChanged struct {
	WatchID string
	Event   domain.FileEvent
}

// WatchStopped signals that a file watch ended.
type WatchStopped struct {
	WatchID string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the current settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
