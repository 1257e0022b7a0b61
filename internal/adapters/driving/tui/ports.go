// Package tui provides an interactive terminal user interface for rote.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deck loads and reloads study files.
	Deck driving.DeckService

	// Session runs the reveal/advance cycle.
	Session driving.StudySession

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Watch reports study file changes. Optional; nil disables reloading.
	Watch driving.WatchService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(deck driving.DeckService, session driving.StudySession) *Ports {
	return &Ports{
		Deck:    deck,
		Session: session,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Deck == nil {
		return ErrMissingDeckService
	}
	if p.Session == nil {
		return ErrMissingStudySession
	}
	return nil
}
