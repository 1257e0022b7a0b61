// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateNoDeck  State = "no_deck"
	StateLoading State = "loading"
	StateStudy   State = "study"
	StateError   State = "error"
)

// Bar shows the study file, deck counts, phase and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	file    string
	entries int
	dropped int
	phase   domain.Phase
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateNoDeck,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Error.Render("Error")
	case StateStudy:
		parts := []string{
			s.styles.Normal.Render(filepath.Base(s.file)),
			s.styles.Muted.Render(fmt.Sprintf("%d questions", s.entries)),
		}
		if s.dropped > 0 {
			parts = append(parts, s.styles.Warning.Render(fmt.Sprintf("%d skipped", s.dropped)))
		}
		if s.message != "" {
			parts = append(parts, s.styles.Muted.Render(s.message))
		}
		return strings.Join(parts, s.styles.Muted.Render(" · "))
	case StateNoDeck:
	}
	return s.styles.Muted.Render("No study file")
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	hint := ""
	if s.state == StateStudy {
		bindings = s.keymap.StudyHelp()
		hint = "space: reveal"
		if s.phase.Revealed() {
			hint = "space: next"
		}
		bindings = bindings[1:]
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings)+1)
	if hint != "" {
		hints = append(hints, hint)
	}
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetDeck shows deck details and switches to the study state.
func (s *Bar) SetDeck(deck *domain.Deck) {
	if deck == nil {
		s.state = StateNoDeck
		s.file = ""
		s.entries = 0
		s.dropped = 0
		return
	}
	s.state = StateStudy
	s.file = deck.Path
	s.entries = deck.Len()
	s.dropped = len(deck.Dropped)
	s.message = ""
}

// SetPhase sets the phase used for the interaction hint.
func (s *Bar) SetPhase(phase domain.Phase) {
	s.phase = phase
}

// Phase returns the displayed phase.
func (s *Bar) Phase() domain.Phase {
	return s.phase
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a short message shown after the deck details.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
